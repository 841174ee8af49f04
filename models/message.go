package models

import "time"

// Message is a customer-to-customer chat message. The sender owns it; the
// recipient may read but not mutate it.
type Message struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id" gorm:"not null;index"`
	Sender      Customer  `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	RecipientID uint      `json:"recipient_id" gorm:"not null;index"`
	Recipient   Customer  `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
	Contents    string    `json:"contents" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
