// Package archive converts directory trees to and from tar streams.
package archive

import (
	"archive/tar"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/zerr"
)

// TarArchiver implements ports.Archiver using archive/tar. Archive streams
// incrementally, so the full archive never exists in memory; large trees
// flow through whatever writer the caller provides at its pace.
type TarArchiver struct{}

// NewTarArchiver creates a new TarArchiver.
func NewTarArchiver() *TarArchiver {
	return &TarArchiver{}
}

// Archive walks dir and writes every entry to w as a tar stream, wrapped
// in the selected compression. Entry paths are relative to dir.
func (a *TarArchiver) Archive(ctx context.Context, dir string, w io.Writer, compression domain.CompressionKind) error {
	cw, err := wrapWriter(w, compression)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}

	tw := tar.NewWriter(cw)

	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == dir {
			return nil
		}
		return writeEntry(tw, dir, path, entry)
	})
	if walkErr != nil {
		return zerr.Wrap(walkErr, domain.ErrArchiveFailed.Error())
	}

	if err := tw.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	if err := cw.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	return nil
}

func writeEntry(tw *tar.Writer, root, path string, entry fs.DirEntry) error {
	info, err := entry.Info()
	if err != nil {
		return err
	}

	var link string
	if info.Mode()&fs.ModeSymlink != 0 {
		if link, err = os.Readlink(path); err != nil {
			return err
		}
	}

	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(rel)
	if info.IsDir() {
		header.Name += "/"
	}

	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}

	f, err := os.Open(path) //nolint:gosec // path comes from walking the staging dir
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(tw, f)
	return err
}

// Extract restores a stream produced by Archive into dir. Entries that
// would escape dir are rejected.
func (a *TarArchiver) Extract(r io.Reader, dir string, compression domain.CompressionKind) error {
	cr, err := wrapReader(r, compression)
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer cr.Close()

	tr := tar.NewReader(cr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, domain.ErrExtractFailed.Error())
		}

		if !filepath.IsLocal(filepath.FromSlash(header.Name)) {
			return domain.Detail(domain.ErrExtractFailed, "entry", header.Name)
		}
		target := filepath.Join(dir, filepath.FromSlash(header.Name))

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, fs.FileMode(header.Mode)); err != nil { //nolint:gosec // mode from archive
				return zerr.Wrap(err, domain.ErrExtractFailed.Error())
			}
		case tar.TypeSymlink:
			if err := os.Symlink(header.Linkname, target); err != nil {
				return zerr.Wrap(err, domain.ErrExtractFailed.Error())
			}
		case tar.TypeReg:
			if err := extractFile(tr, target, fs.FileMode(header.Mode)); err != nil { //nolint:gosec // mode from archive
				return err
			}
		}
	}
}

func extractFile(tr *tar.Reader, target string, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // target is inside the extraction dir
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer f.Close()

	if _, err := io.Copy(f, tr); err != nil { //nolint:gosec // bounded by the tar entry size
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	return nil
}
