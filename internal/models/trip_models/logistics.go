package trip_models

type FlightDetail struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Time         string `json:"time"`
	Terminal     string `json:"terminal"`
}

type FlightInfo struct {
	Outbound FlightDetail `json:"outbound"`
	Inbound  FlightDetail `json:"inbound"`
}

type HotelInfo struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	BookingRef string `json:"bookingRef"`
}

type Logistics struct {
	Flights FlightInfo `json:"flights"`
	Hotel   HotelInfo  `json:"hotel"`
}
