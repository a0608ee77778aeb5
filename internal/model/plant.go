package model

// Plant is the detail-screen entity. Description holds HTML.
type Plant struct {
	ID               string `json:"plantId"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	GrowZoneNumber   int    `json:"growZoneNumber"`
	WateringInterval int    `json:"wateringInterval"`
	ImageURL         string `json:"imageUrl"`
}

// SamplePlant is shown when no plant file is given.
func SamplePlant() Plant {
	return Plant{
		ID:   "malus-pumila",
		Name: "Apple",
		Description: `An apple is a sweet, edible fruit produced by an apple tree (<i>Malus pumila</i>).` +
			`<br><br>Apple trees are cultivated worldwide, and are the most widely grown species in the genus <b>Malus</b>.` +
			`<br><br><br><br>(From <a href="https://en.wikipedia.org/wiki/Apple">Wikipedia</a>)`,
		GrowZoneNumber:   3,
		WateringInterval: 30,
	}
}
