package twilio

import "encoding/xml"

// Webhook represents the form fields Twilio posts for an inbound message
type Webhook struct {
	MessageSid string `form:"MessageSid"`
	From       string `form:"From"`
	To         string `form:"To"`
	Body       string `form:"Body"`
}

// MessagingResponse is the TwiML reply envelope Twilio expects back
type MessagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}
