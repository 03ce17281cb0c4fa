package userdata

import (
	"sync"

	"github.com/google/uuid"
)

// PriceAlert is a user's subscription to price changes of a product.
type PriceAlert struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	TargetPrice float64 `json:"targetPrice"`
}

// AlertRepository stores per-user price-alert subscriptions.
type AlertRepository interface {
	Get(userID string) []PriceAlert
	Set(userID string, alerts []PriceAlert)
}

// InMemoryAlertRepository implements AlertRepository with a guarded map.
type InMemoryAlertRepository struct {
	mu     sync.RWMutex
	alerts map[string][]PriceAlert
}

// NewInMemoryAlertRepository creates an empty alert repository.
func NewInMemoryAlertRepository() *InMemoryAlertRepository {
	return &InMemoryAlertRepository{
		alerts: make(map[string][]PriceAlert),
	}
}

// Get returns a copy of the user's alerts.
func (r *InMemoryAlertRepository) Get(userID string) []PriceAlert {
	r.mu.RLock()
	defer r.mu.RUnlock()
	alerts := r.alerts[userID]
	out := make([]PriceAlert, len(alerts))
	copy(out, alerts)
	return out
}

// Set replaces the user's alerts.
func (r *InMemoryAlertRepository) Set(userID string, alerts []PriceAlert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[userID] = alerts
}

// Subscribe adds a price alert for the user and returns it with a fresh id.
func Subscribe(repo AlertRepository, userID, productID string, targetPrice float64) PriceAlert {
	alert := PriceAlert{
		ID:          uuid.New().String(),
		ProductID:   productID,
		TargetPrice: targetPrice,
	}
	alerts := repo.Get(userID)
	alerts = append(alerts, alert)
	repo.Set(userID, alerts)
	return alert
}
