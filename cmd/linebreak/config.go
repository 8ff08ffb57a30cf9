package main

import (
	"fmt"
)

func cmdConfig(args []string, w Writer) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("usage: linebreak config get|set|list|path")
	}

	switch args[0] {
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: linebreak config get <key>")
		}
		val, err := cfg.Get(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, val)

	case "set":
		if len(args) < 3 {
			return fmt.Errorf("usage: linebreak config set <key> <value>")
		}
		key, value := args[1], args[2]
		if err := cfg.Set(key, value); err != nil {
			return err
		}
		if err := cfg.Save(rootFS, path); err != nil {
			return err
		}
		debugf("wrote %s", path)
		fmt.Fprintf(w, "%s=%s\n", key, value)

	case "list":
		for _, kv := range cfg.List() {
			fmt.Fprintf(w, "%s=%s\n", kv[0], kv[1])
		}

	case "path":
		fmt.Fprintln(w, path)

	default:
		return fmt.Errorf("usage: linebreak config get|set|list|path")
	}
	return nil
}
