package usecase

import "github.com/xavierca1/canchoice-leads/internal/entity"

type SearchDuplicatesInput struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Date    string `json:"date"` // YYYY-MM-DD
}

type SearchDuplicatesOutput struct {
	Data      []entity.LeadRecord `json:"data"`
	Duplicate bool                `json:"duplicate"`
}

type CreateLeadOutput struct {
	Envelope map[string]any `json:"envelope"`
	RecordID string         `json:"record_id,omitempty"`
	IntakeID string         `json:"intake_id,omitempty"`
}

// LeadFormInput mirrors the CRM field names the intake form submits.
type LeadFormInput struct {
	FirstName   string `json:"First_Name"`
	LastName    string `json:"Last_Name"`
	Email       string `json:"Email"`
	Mobile      string `json:"Mobile"`
	Dealer      string `json:"Dealer"`
	LeadSource  string `json:"Lead_Source"`
	LeadTypes   string `json:"Lead_Types"`
	MeetingDate string `json:"Meeting_Date"`
	MeetingTime string `json:"Meeting_Time"`
	FullAddress string `json:"Full_Address"`
	Street      string `json:"Street"`
	City        string `json:"City"`
	Province    string `json:"Province"`
	ZipCode     string `json:"Zip_Code"`
	Country     string `json:"Country"`
}
