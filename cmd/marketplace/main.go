package main

import "github.com/bazaarlabs/marketplace/internal/app"

func main() {
	err := app.NewMarketplaceApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
