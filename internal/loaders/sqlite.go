package loaders

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thirabeach/concierge/internal/utils"
)

// NoRoomDetails is returned as context when the room table is empty.
const NoRoomDetails = "No room details available."

// Room is a stored title/description pair describing one bookable room type.
// Rows are entered out of band; this service only reads them.
type Room struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"uniqueIndex"`
	Description string
}

func (Room) TableName() string {
	return "room_data"
}

// SqliteClient owns the file-backed room store.
type SqliteClient struct {
	path string
	db   *gorm.DB
}

// NewSqliteClient opens (or creates) the database file and ensures the
// room_data table exists.
func NewSqliteClient(path string) (*SqliteClient, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}

	if err := db.AutoMigrate(&Room{}); err != nil {
		return nil, fmt.Errorf("failed to migrate room_data table: %w", err)
	}

	client := &SqliteClient{path: path, db: db}

	count, err := client.CountRooms(context.Background())
	if err != nil {
		return nil, err
	}
	utils.Zlog.Info("Room store initialized",
		zap.String("path", path),
		zap.Int64("room_count", count))

	return client, nil
}

// Ping verifies the underlying connection is still usable.
func (c *SqliteClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *SqliteClient) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CountRooms returns the number of stored room descriptions.
func (c *SqliteClient) CountRooms(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&Room{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

// FetchRoomDetails returns every room formatted as
// "Room: <title>\nDescription: <description>" blocks separated by blank
// lines, in table order, or NoRoomDetails when the table is empty.
func (c *SqliteClient) FetchRoomDetails(ctx context.Context) (string, error) {
	var rooms []Room
	if err := c.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return "", fmt.Errorf("failed to fetch room details: %w", err)
	}

	if len(rooms) == 0 {
		utils.Zlog.Warn("No room details found in database")
		return NoRoomDetails, nil
	}

	blocks := make([]string, 0, len(rooms))
	for _, room := range rooms {
		blocks = append(blocks, fmt.Sprintf("Room: %s\nDescription: %s", room.Title, room.Description))
	}

	utils.Zlog.Info("Retrieved room descriptions", zap.Int("count", len(rooms)))
	return strings.Join(blocks, "\n\n"), nil
}

// SeedRooms inserts room rows, used by tests and data-entry tooling.
func (c *SqliteClient) SeedRooms(ctx context.Context, rooms []Room) error {
	for i := range rooms {
		if err := c.db.WithContext(ctx).Create(&rooms[i]).Error; err != nil {
			return fmt.Errorf("failed to insert room %q: %w", rooms[i].Title, err)
		}
	}
	return nil
}
