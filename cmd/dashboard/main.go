package main

import (
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-dashboard/internal/api"
	"restaurant-dashboard/internal/config"
	"restaurant-dashboard/internal/handlers"
	"restaurant-dashboard/internal/notify"
	"restaurant-dashboard/internal/poller"
	"restaurant-dashboard/internal/router"
	"restaurant-dashboard/internal/store"
)

const sessionTTL = 24 * time.Hour

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	var backend store.Backend
	if conf.RedisAddress != "" {
		client := redis.NewClient(&redis.Options{Addr: conf.RedisAddress})
		backend = store.NewRedisBackend(client, "default", sessionTTL)
	} else {
		backend = store.NewMemoryBackend()
	}
	st := store.NewStore(backend)

	client := api.NewClient(conf.APIAddress)

	var player notify.Player = notify.NopPlayer{}
	if conf.AlertSoundCmd != "" {
		player = notify.NewCommandPlayer(conf.AlertSoundCmd, conf.AlertSoundPath)
	}
	sink := notify.NewSink(st, player)

	p := poller.NewPoller(st, client, sink)

	// A session restored from the backend resumes polling right away.
	if user := st.CurrentUser(); user != nil && user.Token != "" {
		p.Start()
	}

	handlerSet := handlers.NewHandlerSet(conf.Secret, conf.AuthCookieExpiresIn, st, client, p)

	r := router.NewRouter(conf, handlerSet)

	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}
}
