package refill

type Request struct {
	PlayerID string
	Username string
}

type Response struct {
	Success   bool `json:"success"`
	NewEnergy int  `json:"new_energy"`
	Credited  int  `json:"credited"`
}
