package storage

import "time"

// Models lists every table the journal migrates.
var Models = []interface{}{
	&LaunchRecord{},
	&ExplosionRecord{},
}

// LaunchRecord is written when a projectile leaves its owner.
type LaunchRecord struct {
	ID        uint      `gorm:"primarykey;autoIncrement;"`
	Time      time.Time `gorm:"index:idx_launch_time"`
	FlyableID string    `gorm:"size:36;index:idx_launch_flyable_id"`
	Kind      string    `gorm:"size:16"`
	Owner     string    `gorm:"size:64"`
	X         float32
	Y         float32
	Z         float32
	Heading   float32 // radians
	Pitch     float32 // radians
	Speed     float32
}

// ExplosionRecord is written once per projectile when it is retired.
type ExplosionRecord struct {
	ID          uint      `gorm:"primarykey;autoIncrement;"`
	Time        time.Time `gorm:"index:idx_explosion_time"`
	FlyableID   string    `gorm:"size:36;index:idx_explosion_flyable_id"`
	Kind        string    `gorm:"size:16"`
	Owner       string    `gorm:"size:64"`
	Victim      string    `gorm:"size:64"` // empty unless a kart was hit directly
	OutOfBounds bool
	X           float32
	Y           float32
	Z           float32
	Age         float32 // seconds in flight
}
