package services

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunDue(t *testing.T) {
	db := newTestDB(t)
	optedIn := seedUser(t, db, "auto@example.com")
	optedOut := seedUser(t, db, "manual@example.com")
	milk := seedProduct(t, db, "Whole Milk", 3.99)

	now := time.Now()
	require.NoError(t, db.Create(&entity.UserPreference{
		UserID:            optedIn.ID,
		AutoBasketEnabled: true,
		AutoBasketDay:     int(now.Weekday()),
		AutoBasketHour:    now.Hour(),
	}).Error)
	require.NoError(t, db.Create(&entity.UserPreference{
		UserID:            optedOut.ID,
		AutoBasketEnabled: false,
		AutoBasketDay:     int(now.Weekday()),
		AutoBasketHour:    now.Hour(),
	}).Error)

	ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[%d]`, milk.ID)
	})
	prediction := newPredictionService(t, db, ml)
	scheduler := NewBasketScheduler(repository.NewPreferenceRepository(db), prediction)

	scheduler.RunDue(now)

	var baskets []entity.PredictedBasket
	require.NoError(t, db.Find(&baskets).Error)
	require.Len(t, baskets, 1)
	assert.Equal(t, optedIn.ID, baskets[0].UserID)
}
