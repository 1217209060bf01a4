package models

import "time"

// ContactMessageStatusUnread is the initial status of a contact message.
const ContactMessageStatusUnread = "unread"

// ContactMessage is a message submitted through the general contact page.
type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:100"`
	Phone     string `gorm:"size:20"`
	Subject   string `gorm:"size:200"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"size:20;default:unread"`
	CreatedAt time.Time
}
