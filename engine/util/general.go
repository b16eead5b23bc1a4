package util

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ReadJsonFile decodes the JSON document at path into msg.
func ReadJsonFile(path string, msg any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err = json.Unmarshal(data, msg); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// WriteJsonFile stores msg as indented JSON, replacing the file at path.
func WriteJsonFile(path string, msg any) error {
	data, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
