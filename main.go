package main

import (
	"log"
	"os"
	"strings"
	"time"

	"SignaturePad/internal/config"
	padnet "SignaturePad/internal/net"
	"SignaturePad/internal/raster"
	"SignaturePad/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const CustomURLScheme = "sigpad://"

func main() {
	cfg, err := config.LoadFile(configPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	args := os.Args
	if len(args) > 1 && strings.HasPrefix(args[1], CustomURLScheme) {
		runPad(cfg, args[1])
	} else {
		runHost(cfg)
	}
}

func configPath() string {
	if p := os.Getenv("SIGPAD_CONFIG"); p != "" {
		return p
	}
	return "signaturepad.yaml"
}

func runHost(cfg *config.Config) {
	log.Println("Starting as HOST")
	a := app.New()

	if !cfg.Remote.Enabled {
		ui.NewHost(a, cfg, "").Window.ShowAndRun()
		return
	}

	server := padnet.NewPadServer()
	host := ui.NewHost(a, cfg, padnet.ShareLink(CustomURLScheme, cfg.Remote.Port))

	// Pad frames arrive on connection goroutines; the capture core is single threaded.
	server.OnMessage = func(m padnet.Message) {
		fyne.Do(func() { host.HandleRemote(m) })
	}
	host.OnSaved = func(raster.EncodedImage) {
		server.Broadcast(padnet.Message{Type: padnet.TypeStatus, Text: "Signature saved"})
	}
	host.OnCancelled = func() {
		server.Broadcast(padnet.Message{Type: padnet.TypeStatus, Text: "Signature cancelled"})
	}

	go func() {
		if err := server.ListenAndServe(cfg.Remote.Port); err != nil {
			log.Printf("[REMOTE] %v", err)
		}
	}()
	defer server.Close()

	if cfg.Remote.Advertise {
		mdnsServer, err := padnet.Advertise(cfg.Remote.Port)
		if err != nil {
			log.Printf("[MDNS] %v", err)
		} else {
			defer mdnsServer.Shutdown()
		}
	}

	host.Window.ShowAndRun()
}

func runPad(cfg *config.Config, link string) {
	log.Println("Starting as REMOTE PAD")
	address := strings.TrimSuffix(strings.TrimPrefix(link, CustomURLScheme), "/")
	if address == "" {
		padnet.Browse(2*time.Second, func(addr string) {
			if address == "" {
				address = addr
			}
		})
		if address == "" {
			log.Fatal("No SignaturePad host found on the local network")
		}
	}

	client, err := padnet.DialPad(address)
	if err != nil {
		log.Fatalf("Connection failed: %v", err)
	}
	defer client.Close()
	log.Println("Connected to host", address)

	a := app.New()
	pad, err := ui.NewRemotePad(a, cfg, client.Send)
	if err != nil {
		log.Fatalf("Failed to open pad: %v", err)
	}
	pad.SetStatus("Connected to " + address)

	go func() {
		err := client.Listen(func(m padnet.Message) {
			if m.Type == padnet.TypeStatus {
				fyne.Do(func() { pad.SetStatus(m.Text) })
			}
		})
		log.Printf("[REMOTE] Disconnected from host: %v", err)
		fyne.Do(func() { pad.SetStatus("Disconnected from host") })
	}()

	pad.Window.ShowAndRun()
}
