// Package grievance reads registered grievances from the department
// database and renders their status for chat replies.
package grievance

import "time"

// Record mirrors the department's grievance detail table.
type Record struct {
	ID               uint       `gorm:"primaryKey" json:"-"`
	GrievanceID      string     `gorm:"column:grievance_id;uniqueIndex;size:64" json:"grievance_id"`
	CitizenName      string     `gorm:"column:citizen_name;size:128" json:"citizen_name"`
	MobileNumber     string     `gorm:"column:mobile_number;index;size:16" json:"mobile_number"`
	Status           string     `gorm:"column:grievance_status;size:64" json:"status"`
	LoggedDate       time.Time  `gorm:"column:grievance_logged_date" json:"logged_date"`
	OrganizationName string     `gorm:"column:organization_name;size:128" json:"organization_name"`
	Category         string     `gorm:"column:grievance_name;size:128" json:"category"`
	SubCategory      string     `gorm:"column:sub_grievance_name;size:128" json:"sub_category"`
	DistrictName     string     `gorm:"column:district_name;size:64" json:"district_name"`
	BlockName        string     `gorm:"column:block_name;size:64" json:"block_name"`
	GramPanchayat    string     `gorm:"column:grampanchayat_name;size:64" json:"grampanchayat_name"`
	VillageName      string     `gorm:"column:village_name;size:64" json:"village_name"`
	ResolvedDate     *time.Time `gorm:"column:resolved_date" json:"resolved_date,omitempty"`
	ResolvedBy       string     `gorm:"column:resolved_user_name;size:128" json:"resolved_by,omitempty"`
	ClosedDate       *time.Time `gorm:"column:closed_date" json:"closed_date,omitempty"`
	VerifiedBy       string     `gorm:"column:verified_user_name;size:128" json:"verified_by,omitempty"`
}

// TableName keeps the legacy table name used by the department portal.
func (Record) TableName() string {
	return "grievance_detail2"
}
