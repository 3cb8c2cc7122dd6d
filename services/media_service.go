package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"
)

// ImageFile is one uploaded image waiting to be stored
type ImageFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// FromFileHeaders adapts multipart parts to ImageFiles
func FromFileHeaders(headers []*multipart.FileHeader) []ImageFile {
	files := make([]ImageFile, 0, len(headers))
	for _, h := range headers {
		h := h
		files = append(files, ImageFile{
			Name: h.Filename,
			Size: h.Size,
			Open: func() (io.ReadCloser, error) { return h.Open() },
		})
	}
	return files
}

type MediaUploader interface {
	Upload(ctx context.Context, folder string, file ImageFile) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, folder string, file ImageFile) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	start := time.Now()
	resp, err := u.cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: folder})
	status := 200
	if err != nil || resp.Error.Message != "" {
		status = 500
	}
	metrics.ObserveExternal("cloudinary", "upload", status, time.Since(start))

	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

const maxParallelUploads = 4

// UploadImages stores files concurrently. URLs keep the order of files; the
// first failure cancels the rest.
func UploadImages(ctx context.Context, up MediaUploader, folder string, files []ImageFile) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	if up == nil {
		return nil, apperrors.Upstream("Image storage is not configured", nil)
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUploads)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			url, err := up.Upload(gctx, folder, f)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Upstream("Failed to upload images", err)
	}
	return urls, nil
}
