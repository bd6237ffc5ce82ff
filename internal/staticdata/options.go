package staticdata

// Option is one dropdown entry on the intake form.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var LeadTypes = []Option{
	{Label: "-Select-", Value: "-Select-"},
	{Label: "Attic", Value: "Attic"},
	{Label: "Hybrid Heating System", Value: "Hybrid Heating System"},
	{Label: "Heat Pump", Value: "Heat Pump"},
	{Label: "Tankless", Value: "Tankless"},
	{Label: "Weaver Seal", Value: "Weaver Seal"},
	{Label: "HVAC Check Up", Value: "HVAC Check Up"},
	{Label: "Gas Bill Savings", Value: "Gas Bill Savings"},
	{Label: "Electricity Bill Savings", Value: "Electricity Bill Savings"},
	{Label: "Tune Up", Value: "Tune Up"},
	{Label: "Renovation", Value: "Renovation"},
	{Label: "Carbon Tax Reduction", Value: "Carbon Tax Reduction"},
	{Label: "Free AC", Value: "Free AC"},
}

var LeadSources = []Option{
	{Label: "-Select-", Value: "-Select-"},
	{Label: "C Social (EXT)", Value: "C Social (EXT)"},
	{Label: "C Social (INT)", Value: "C Social (INT)"},
}

var Dealers = []Option{
	{Label: "-Select-", Value: "-Select-"},
	{Label: "Canadian Choice Home Services", Value: "Canadian Choice Home Services"},
}
