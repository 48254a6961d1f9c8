// Package config provides configuration parsing for vdomctl.
//
// The configuration is stored in vdomctl.json in the working directory.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "events": ["click", "input"],
//	  "logLevel": "debug",
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "vrt"
//	  },
//	  "output": {
//	    "format": "json",
//	    "indent": "\t"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	categories, err := cfg.Categories()
package config
