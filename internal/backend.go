package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jetforge/fadecd/internal/api"
	"github.com/jetforge/fadecd/internal/atmosphere"
	"github.com/jetforge/fadecd/internal/configuration"
	"github.com/jetforge/fadecd/internal/controller"
	"github.com/jetforge/fadecd/internal/engines"
	"github.com/jetforge/fadecd/internal/fadec"
	"github.com/jetforge/fadecd/internal/recorder"
	"github.com/jetforge/fadecd/internal/sim"
	"github.com/jetforge/fadecd/internal/statistics"
	"github.com/jetforge/fadecd/internal/ui"
)

func RunDaemon() {
	config := configuration.CurrentConfig

	host := createHost(config)
	driver := createDriver(host, config)

	statistics.Register(statistics.NewEngineCollector(driver))
	statistics.Register(statistics.NewControllerCollector(driver))

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === control loop
		g.Add(func() error {
			err := driver.Run(ctx)
			ui.Info("FADEC control loop stopped.")
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error running control loop: %v", err)
			}
		})
	}
	{
		// === flight data recorder
		if config.Recorder.Enabled {
			pers := recorder.NewPersistence(config.DbPath)
			if err := pers.Init(); err != nil {
				ui.Fatal("Unable to open flight data database: %v", err)
			}

			rec := recorder.NewRecorder(pers, driver, config.Recorder.SnapshotRate, config.Recorder.MaxSessions)
			g.Add(func() error {
				err := rec.Run(ctx)
				ui.Info("Flight data recorder stopped.")
				return err
			}, func(err error) {
				if err != nil {
					ui.Warning("Error recording flight data: %v", err)
				}
			})
		}
	}
	{
		// === Prometheus Exporter
		if config.Statistics.Enabled {
			g.Add(func() error {
				port := config.Statistics.Port
				if port <= 0 || port >= 65535 {
					port = 9613
				}
				addr := fmt.Sprintf(":%d", port)
				server := &http.Server{Addr: addr, Handler: promhttp.Handler()}

				go func() {
					<-ctx.Done()
					ui.Info("Stopping statistics server...")
					timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer timeoutCancel()
					_ = server.Shutdown(timeoutCtx)
				}()

				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start prometheus metrics endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping statistics server: " + err.Error())
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		// === REST api
		if config.Api.Enabled {
			restService := api.CreateRestService(driver)
			g.Add(func() error {
				addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)

				go func() {
					<-ctx.Done()
					ui.Info("Stopping api server...")
					timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer timeoutCancel()
					_ = restService.Shutdown(timeoutCtx)
				}()

				if err := restService.Start(addr); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start api server (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping api server: " + err.Error())
				} else {
					ui.Info("Api server stopped.")
				}
			})
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// createHost builds the in-memory simulation backend, seeded with a
// standard day at sea level so the loop computes sane targets before
// the first real instrument values arrive.
func createHost(config configuration.Configuration) *sim.MemoryHost {
	host := sim.NewMemoryHost()
	host.SetGlobal(sim.VarMach, 0)
	host.SetGlobal(sim.VarAmbientDensity, atmosphere.Density(0))
	host.SetGlobal(sim.VarPressureAltitude, 0)

	if samples := config.Controller.ThrustSmoothingSamples; samples >= 2 {
		host.EnableThrustSmoothing(samples)
	}
	return host
}

func createDriver(host sim.Host, config configuration.Configuration) *controller.Driver {
	fadecs := engines.NewFrom(func(n engines.Number) *fadec.Controller {
		c, err := fadec.NewControllerFromConfig(config.Fadec)
		if err != nil {
			ui.Fatal("Unable to create FADEC for %s: %v", n, err)
		}
		return c
	})

	return controller.NewDriver(host, fadecs, config.Controller.UpdateRate)
}
