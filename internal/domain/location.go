package domain

type Location struct {
	ID       string `json:"id"`
	Name     string `json:"location_name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

type CreateLocationInput struct {
	Name     string
	Address  string
	Capacity int
}

type UpdateLocationInput struct {
	Name     string
	Address  string
	Capacity int
}
