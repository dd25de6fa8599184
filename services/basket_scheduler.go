package services

import (
	"context"
	"time"

	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/rs/zerolog/log"
)

// BasketScheduler generates predicted baskets for users who opted into
// scheduled auto-baskets. It ticks at the top of every hour and fires for
// preferences matching the current day-of-week and hour. Off by default;
// basket generation stays user-triggered unless AUTO_BASKET_ENABLED is set.
type BasketScheduler struct {
	PrefRepo   *repository.PreferenceRepository
	Prediction *PredictionService

	stop chan struct{}
}

func NewBasketScheduler(prefRepo *repository.PreferenceRepository, prediction *PredictionService) *BasketScheduler {
	return &BasketScheduler{
		PrefRepo:   prefRepo,
		Prediction: prediction,
		stop:       make(chan struct{}),
	}
}

func (s *BasketScheduler) Start() {
	go s.run()
	log.Info().Msg("auto-basket scheduler started")
}

func (s *BasketScheduler) Stop() {
	close(s.stop)
}

func (s *BasketScheduler) run() {
	for {
		now := time.Now()
		next := now.Truncate(time.Hour).Add(time.Hour)
		select {
		case <-s.stop:
			return
		case <-time.After(next.Sub(now)):
		}
		s.RunDue(time.Now())
	}
}

// RunDue fires generation for every preference matching t's day and hour.
func (s *BasketScheduler) RunDue(t time.Time) {
	prefs, err := s.PrefRepo.ListDueAutoBasket(int(t.Weekday()), t.Hour())
	if err != nil {
		log.Error().Err(err).Msg("auto-basket query failed")
		return
	}

	for _, p := range prefs {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		basket, err := s.Prediction.Current(ctx, p.UserID)
		cancel()
		if err != nil {
			log.Error().Err(err).Uint("userId", p.UserID).Msg("auto-basket generation failed")
			continue
		}
		if basket != nil {
			log.Info().Uint("userId", p.UserID).Uint("basketId", basket.ID).
				Msg("auto-basket generated")
		}
	}
}
