package main

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"focusdeck/internal/app"
	"focusdeck/internal/config"
	"focusdeck/internal/core/pomodoro"
	"focusdeck/internal/platform"
	"focusdeck/internal/ui/desk"
	"focusdeck/internal/ui/preferences"
	"focusdeck/internal/ui/tray"
	"focusdeck/resources"
)

const (
	appID       = "com.focusdeck.app"
	eventBuffer = 64
)

func runDesktop(rt *cli) error {
	instance, err := platform.AcquireSingleInstance(config.AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			rt.log.Infow("another instance is running, asked it to show its window", "detail", err)
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = instance.Release()
	}()
	rt.log.Debugw("single instance guard", "address", instance.Address())

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo(resources.AppIcon))

	onNotifyError := func(err error) {
		rt.log.Debugw("phase notification failed", "error", err)
	}
	var host *app.Host
	notifier := pomodoro.MultiNotifier{
		pomodoro.AsyncNotifier{Target: platform.NewChime(), OnError: onNotifyError},
		pomodoro.AsyncNotifier{
			Target: desk.NewNotifier(fyneApp, func() pomodoro.Snapshot {
				return host.Runner().Snapshot()
			}),
			OnError: onNotifyError,
		},
	}

	host, err = openHost(rt, app.Options{Notifier: notifier})
	if err != nil {
		return err
	}
	defer func() {
		if err := host.Close(); err != nil {
			rt.log.Errorw("close host", "error", err)
		}
	}()

	prefsWindow := preferences.New(fyneApp, host.Config(), host.SaveConfig)
	mainWindow, err := desk.New(fyneApp, host, rt.log, prefsWindow.Show)
	if err != nil {
		return err
	}

	runner := host.Runner()
	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Running: resources.MustLogo(resources.TrayRunningIcon),
			Paused:  resources.MustLogo(resources.TrayPausedIcon),
			Break:   resources.MustLogo(resources.TrayBreakIcon),
		}, tray.Callbacks{
			OnToggle:   func() { runner.StartPause() },
			OnReset:    func() { runner.Reset() },
			OnShow:     mainWindow.Show,
			OnSettings: prefsWindow.Show,
			OnQuit:     fyneApp.Quit,
		})
		trayManager.Update(runner.Snapshot())
	} else {
		rt.log.Infow("system tray unsupported on this platform")
		mainWindow.Window().SetCloseIntercept(nil)
		mainWindow.Window().SetMaster()
	}

	events := runner.Subscribe(eventBuffer)
	go func() {
		for event := range events {
			fyne.Do(func() {
				mainWindow.Apply(event)
				if trayManager != nil {
					trayManager.Update(event.Snapshot)
				}
			})
		}
	}()
	go func() {
		for range instance.Activations() {
			fyne.Do(mainWindow.Show)
		}
	}()

	rt.log.Infow("focusdeck started", "data_dir", rt.options.DataDir, "store", rt.options.Store)
	mainWindow.Show()
	fyneApp.Run()
	return nil
}
