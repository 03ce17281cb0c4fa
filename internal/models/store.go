package models

// StoreType tags a store with the retail format that governs which
// categories it may carry and its price multiplier range.
type StoreType string

const (
	StoreTypeDiscount    StoreType = "discount"
	StoreTypeHypermarket StoreType = "hypermarket"
	StoreTypeConvenience StoreType = "convenience"
	StoreTypeDrugstore   StoreType = "drugstore"
	StoreTypePharmacy    StoreType = "pharmacy"
	StoreTypeElectronics StoreType = "electronics"
	StoreTypeFurniture   StoreType = "furniture"
	StoreTypeClothing    StoreType = "clothing"
)

// Store represents a retail chain
type Store struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StoreType     StoreType `json:"storeType"`
	LocationCount int       `json:"locationCount"`
}
