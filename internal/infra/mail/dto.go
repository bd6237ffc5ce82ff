package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From     string
	DealerTo string
}

type bookingEmailData struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	FullAddress string
	Dealer      string
	MeetingTime string
	RecordID    string
}
