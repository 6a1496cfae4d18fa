package rank

type Request struct {
	PlayerID string
}

type Response struct {
	Changed  bool   `json:"changed"`
	RankID   *int64 `json:"rank_id,omitempty"`
	RankName string `json:"rank_name,omitempty"`
}
