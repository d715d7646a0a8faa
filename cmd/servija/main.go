package main

import (
	"context"
	"log"
	"os"

	"servija-api/internal"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := internal.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	app.InitControllers(ctx)

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("servija stopped with error: %v", err)
		os.Exit(1)
	}
}
