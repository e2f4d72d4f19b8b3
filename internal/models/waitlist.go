package models

import "time"

type WaitlistEntry struct {
	ID            uint      `gorm:"primaryKey"`
	Email         string    `gorm:"size:255;not null;uniqueIndex"`
	Name          string    `gorm:"size:255;not null"`
	MonthlyAmount *string   `gorm:"size:64"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

// Clone returns a deep copy so stores can hand out entries without sharing the
// MonthlyAmount pointer.
func (e *WaitlistEntry) Clone() *WaitlistEntry {
	if e == nil {
		return nil
	}
	out := *e
	if e.MonthlyAmount != nil {
		amount := *e.MonthlyAmount
		out.MonthlyAmount = &amount
	}
	return &out
}
