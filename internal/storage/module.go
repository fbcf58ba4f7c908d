package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/config"
	"github.com/RacoonMediaServer/rms-memories/internal/model"
	"github.com/google/uuid"
)

const generatorName = "rms-memories"

func renderModule(out config.Output, manifest model.Manifest, generatedAt time.Time) ([]byte, error) {
	if manifest == nil {
		manifest = model.Manifest{}
	}

	var data bytes.Buffer
	enc := json.NewEncoder(&data)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(manifest); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "import type { %s } from %q;\n\n", out.TypeName, out.TypeImport)
	fmt.Fprintf(&buf, "// This file is auto-generated by %s\n", generatorName)
	fmt.Fprintf(&buf, "// Generated at: %s\n", model.FormatTimestamp(generatedAt))
	fmt.Fprintf(&buf, "export const %s: %s[] = %s;\n", out.ExportName, out.TypeName, bytes.TrimRight(data.Bytes(), "\n"))

	return buf.Bytes(), nil
}

func writeAtomic(fs FileSystem, target string, content []byte) error {
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")
	if err := fs.WriteFile(tmp, content, filePerms); err != nil {
		return err
	}
	if err := fs.Rename(tmp, target); err != nil {
		_ = fs.Remove(tmp)
		return err
	}
	return nil
}
