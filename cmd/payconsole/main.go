package main

import (
	"context"
	"log"
	"os"

	"github.com/tzpay/payconsole/internal/buildinfo"
	"github.com/tzpay/payconsole/internal/cli"
	"github.com/tzpay/payconsole/internal/config"
)

func main() {

	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
