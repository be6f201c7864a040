package dto

// CleanResultResponse resultado de una pasada de limpieza.
type CleanResultResponse struct {
	ArchivedPurchases int `json:"archived_purchases"`
	PrunedMovements   int `json:"pruned_movements"`
}
