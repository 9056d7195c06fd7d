// hotaggr clusters hot news into events with LLM assistance — serves the
// scheduled pipeline, and runs one-shot aggregation and merge passes.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
