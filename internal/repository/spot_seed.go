package repository

import "github.com/DecayAI/windwizard/internal/entities"

// DefaultSpots is the built-in demo spot list, centred on the Øresund area
// where the default agent coordinates point. The importer can replace it
// with a scraped list at any time.
var DefaultSpots = []entities.Spot{
	{
		Name:        "Amager Strandpark",
		Lat:         55.6580,
		Lon:         12.6352,
		Region:      "Copenhagen",
		Description: "Flat water lagoon, works in NE through SE, busy on summer evenings",
	},
	{
		Name:        "Sydvestpynten",
		Lat:         55.5590,
		Lon:         12.5320,
		Region:      "Amager",
		Description: "Shallow and flat, best in SW, long walk out at low water",
	},
	{
		Name:        "Mosede Strand",
		Lat:         55.5650,
		Lon:         12.2850,
		Region:      "Køge Bugt",
		Description: "Easy sandy beach, works in W through S",
	},
	{
		Name:        "Ishøj Strand",
		Lat:         55.6060,
		Lon:         12.3460,
		Region:      "Køge Bugt",
		Description: "Big rigging area by the Arken museum, onshore in SE",
	},
	{
		Name:        "Skovshoved",
		Lat:         55.7570,
		Lon:         12.5960,
		Region:      "Copenhagen",
		Description: "Harbour side spot, N through E, chop when it is on",
	},
	{
		Name:        "Lynæs",
		Lat:         55.9420,
		Lon:         11.8470,
		Region:      "Isefjord",
		Description: "Classic fjord spot, works in SW, steady wind over flat water",
	},
	{
		Name:        "Skanör",
		Lat:         55.4160,
		Lon:         12.8280,
		Region:      "Skåne",
		Description: "Swedish side sandbanks, huge shallow area, W through NW",
	},
	{
		Name:        "Habo Ljung",
		Lat:         55.6950,
		Lon:         13.0510,
		Region:      "Skåne",
		Description: "Long shallow beach north of Lomma, SW through NW",
	},
	{
		Name:        "Råå",
		Lat:         56.0010,
		Lon:         12.7380,
		Region:      "Skåne",
		Description: "River mouth spot south of Helsingborg, best in SW",
	},
	{
		Name:        "Klitmøller",
		Lat:         57.0380,
		Lon:         8.5130,
		Region:      "Cold Hawaii",
		Description: "North Sea wave spot, far from Øresund but worth the drive",
	},
}
