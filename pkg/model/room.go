package model

// Room master data is owned by an external catalog service; this engine only
// reads the nightly rate, the bed count and the owning hostel.
type Room struct {
	ID          string `json:"id" bson:"_id"`
	HostelID    string `json:"hostel_id" bson:"hostel_id"`
	Number      int    `json:"number" bson:"number"`
	NightlyRate int    `json:"nightly_rate" bson:"nightly_rate"`
	Beds        int    `json:"beds" bson:"beds"`
}

type Hostel struct {
	ID      string `json:"id" bson:"_id"`
	Name    string `json:"name" bson:"name"`
	City    string `json:"city" bson:"city"`
	Address string `json:"address" bson:"address"`
}
