// Command vehicles-api serves the administrator and vehicle management API.
//
//	vehicles-api migrate                 # create or update the schema
//	vehicles-api admin create --email ...  # register an administrator
//	vehicles-api serve                   # run the HTTP server
//
// @title                       Vehicles API
// @version                     1.0
// @description                 Administrator and vehicle management with JWT bearer auth.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
