package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/matt-g-everett/mapanim/animation"
	"github.com/matt-g-everett/mapanim/api"
	"github.com/matt-g-everett/mapanim/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Registry   *prometheus.Registry
	System     *animation.System
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Api        *api.Api
}

func newApp(config stream.Config) (*app, error) {
	a := new(app)
	a.Config = config
	a.Registry = prometheus.NewRegistry()
	metrics := stream.NewMetrics(a.Registry)

	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID("mapanim").
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	// One system per process, owned by the frame loop.
	a.System = animation.NewSystem()
	a.Controller = stream.NewController(config, a.System, metrics)

	var err error
	a.Streamer, err = stream.NewStreamer(config, a.Client, a.System, a.Controller, metrics)
	if err != nil {
		return nil, err
	}
	a.Api = api.NewApi(config.Api.Listen, a.Streamer, a.Registry)
	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Controller.Subscribe(client); err != nil {
		log.Println(err)
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	defer a.Client.Disconnect(250)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Api.Serve(ctx) })
	g.Go(func() error { return a.Streamer.Run(ctx) })
	return g.Wait()
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Config: broker=%s stream=%s control=%s fps=%v",
		config.Mqtt.URL, config.Mqtt.Topics.Stream, config.Mqtt.Topics.Control, config.Stream.FrameRate)

	a, err := newApp(config)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
}
