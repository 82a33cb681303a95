package models

import (
	"time"

	"github.com/google/uuid"
)

type PhotoSlot string

const (
	PhotoSlotA PhotoSlot = "A"
	PhotoSlotB PhotoSlot = "B"
	PhotoSlotC PhotoSlot = "C"
	PhotoSlotD PhotoSlot = "D"
)

func ParsePhotoSlot(s string) (PhotoSlot, error) {
	switch PhotoSlot(s) {
	case PhotoSlotA, PhotoSlotB, PhotoSlotC, PhotoSlotD:
		return PhotoSlot(s), nil
	}
	return "", ErrInvalidPhotoSlot
}

// PhotoSet holds the four mandated photo slots. A nil slot has no photo yet.
type PhotoSet struct {
	A *string `json:"A" db:"a"`
	B *string `json:"B" db:"b"`
	C *string `json:"C" db:"c"`
	D *string `json:"D" db:"d"`
}

func (p *PhotoSet) Get(slot PhotoSlot) *string {
	switch slot {
	case PhotoSlotA:
		return p.A
	case PhotoSlotB:
		return p.B
	case PhotoSlotC:
		return p.C
	case PhotoSlotD:
		return p.D
	}
	return nil
}

func (p *PhotoSet) Set(slot PhotoSlot, url string) {
	switch slot {
	case PhotoSlotA:
		p.A = &url
	case PhotoSlotB:
		p.B = &url
	case PhotoSlotC:
		p.C = &url
	case PhotoSlotD:
		p.D = &url
	}
}

// Complete reports whether every slot holds a non-empty reference.
func (p *PhotoSet) Complete() bool {
	for _, ref := range []*string{p.A, p.B, p.C, p.D} {
		if ref == nil || *ref == "" {
			return false
		}
	}
	return true
}

const (
	DefaultCriticality = "Non Critical"
	DefaultAssetStatus = "Active"
)

type Asset struct {
	ID                     uuid.UUID `json:"id" db:"id"`
	AssetNumber            string    `json:"asset_number" db:"asset_number"`
	Description            string    `json:"description" db:"description"`
	AssetGroup             string    `json:"asset_group" db:"asset_group"`
	SafetyCriticality      string    `json:"safety_criticality" db:"safety_criticality"`
	OperationalCriticality string    `json:"operational_criticality" db:"operational_criticality"`
	IadcCode               string    `json:"iadc_code" db:"iadc_code"`
	MainParent             string    `json:"main_parent" db:"main_parent"`
	Make                   string    `json:"make" db:"make"`
	Model                  string    `json:"model" db:"model"`
	SerialNumber           string    `json:"serial_number" db:"serial_number"`
	RfidCode               string    `json:"rfid_code" db:"rfid_code"`
	RfidTagNumber          string    `json:"rfid_tag_number" db:"rfid_tag_number"`
	Remarks                string    `json:"remarks" db:"remarks"`
	Unit                   string    `json:"unit" db:"unit"`
	Location               string    `json:"location" db:"location"`
	Status                 string    `json:"status" db:"status"`
	Photos                 PhotoSet  `json:"photos" db:"photos"`
	IsComplete             bool      `json:"is_complete" db:"is_complete"`
	AssignedTo             string    `json:"assigned_to" db:"assigned_to"`
	LastUpdated            time.Time `json:"last_updated" db:"last_updated"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
}

type CreateAssetReq struct {
	AssetNumber            string `json:"asset_number" validate:"required"`
	Description            string `json:"description" validate:"required"`
	AssetGroup             string `json:"asset_group" validate:"required"`
	SafetyCriticality      string `json:"safety_criticality"`
	OperationalCriticality string `json:"operational_criticality"`
	IadcCode               string `json:"iadc_code"`
	MainParent             string `json:"main_parent"`
	Make                   string `json:"make"`
	Model                  string `json:"model"`
	SerialNumber           string `json:"serial_number"`
	RfidCode               string `json:"rfid_code"`
	RfidTagNumber          string `json:"rfid_tag_number"`
	Remarks                string `json:"remarks"`
	Unit                   string `json:"unit" validate:"required"`
	Location               string `json:"location"`
	Status                 string `json:"status"`
}

// UpdateAssetReq is the allow-list of caller-mutable fields. Absent (nil)
// fields leave the stored value untouched. AssetNumber, photos, isComplete,
// assignedTo and the timestamps are not patchable.
type UpdateAssetReq struct {
	Description            *string `json:"description,omitempty"`
	AssetGroup             *string `json:"asset_group,omitempty"`
	SafetyCriticality      *string `json:"safety_criticality,omitempty"`
	OperationalCriticality *string `json:"operational_criticality,omitempty"`
	IadcCode               *string `json:"iadc_code,omitempty"`
	MainParent             *string `json:"main_parent,omitempty"`
	Make                   *string `json:"make,omitempty"`
	Model                  *string `json:"model,omitempty"`
	SerialNumber           *string `json:"serial_number,omitempty"`
	RfidCode               *string `json:"rfid_code,omitempty"`
	RfidTagNumber          *string `json:"rfid_tag_number,omitempty"`
	Remarks                *string `json:"remarks,omitempty"`
	Unit                   *string `json:"unit,omitempty"`
	Location               *string `json:"location,omitempty"`
	Status                 *string `json:"status,omitempty"`
}

// ImportAssetRecord is one row of a bulk import. AssetNumber is the merge
// key; every other field follows the same present-replaces / absent-keeps
// semantics as a direct update.
type ImportAssetRecord struct {
	AssetNumber string `json:"asset_number"`
	UpdateAssetReq
}

type ImportRecordError struct {
	Index       int    `json:"index"`
	AssetNumber string `json:"asset_number,omitempty"`
	Message     string `json:"message"`
}

type ImportResult struct {
	NewCount       int                 `json:"newCount"`
	UpdateCount    int                 `json:"updateCount"`
	FailedCount    int                 `json:"failedCount"`
	TotalProcessed int                 `json:"totalProcessed"`
	Errors         []ImportRecordError `json:"errors,omitempty"`
}

type SetPhotoRes struct {
	PhotoURL   string `json:"photo_url"`
	IsComplete bool   `json:"is_complete"`
}

type UnitStat struct {
	Unit       string `json:"unit" db:"unit"`
	Total      int    `json:"total" db:"total"`
	Completed  int    `json:"completed" db:"completed"`
	Percentage int    `json:"percentage"`
}

type DashboardStats struct {
	TotalAssets          int        `json:"totalAssets"`
	CompletedAssets      int        `json:"completedAssets"`
	TotalNonAdminUsers   int        `json:"totalUsers"`
	CompletionPercentage int        `json:"completionPercentage"`
	UnitStats            []UnitStat `json:"unitStats"`
}
