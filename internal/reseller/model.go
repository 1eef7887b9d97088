package reseller

import "time"

type Reseller struct {
	ResellerID int       `db:"reseller_id" json:"reseller_id"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
