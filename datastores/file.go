package datastores

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/avtools/soundwaves/common/rcontext"
)

type filePersister struct {
	dir string
}

func (f *filePersister) Persist(ctx rcontext.RunContext, name string, r io.Reader, size int64, contentType string) (string, error) {
	if f.dir == "" {
		return "", errors.New("file: upload directory is not configured")
	}
	if err := os.MkdirAll(f.dir, os.ModePerm); err != nil {
		return "", err
	}

	target := filepath.Join(f.dir, name)
	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer out.Close()

	if _, err = io.Copy(out, r); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return target, nil
	}
	return abs, nil
}
