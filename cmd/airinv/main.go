// airinv computes seat availabilities over a sample airline inventory.
//
// Usage:
//
//	airinv avail --technique IBP_YP
//	airinv avail -t RAE_DA -s 'BA;9,2011-06-10;LHR,BKK' -s 'BA;9,2011-06-10;BKK,SYD' -o 'Y-Y@1700'
//	airinv sell -s 'BA;9,2011-06-10;LHR,SYD' -o 'M@950' -n 2
//	airinv init-bpv --format json
//	airinv events --start 2011-01-01 --end 2011-06-10
package main

import (
	"fmt"
	"os"

	"github.com/vsinha/airinv/pkg/interfaces/cli/commands"
)

func main() {
	app := commands.NewApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
