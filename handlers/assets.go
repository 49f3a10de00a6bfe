package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Dave-funds/betahome/uploader"
)

// assetFiles are the multipart file parts a create/edit request may carry.
type assetFiles struct {
	Avatar *multipart.FileHeader
	Images []*multipart.FileHeader
	Video  *multipart.FileHeader
}

func (f assetFiles) empty() bool {
	return f.Avatar == nil && len(f.Images) == 0 && f.Video == nil
}

// assetURLs are the durable URLs after the uploads have resolved. A zero
// value for a kind means that kind was not part of the request.
type assetURLs struct {
	Avatar string
	Images []string
	Video  string
}

// collectAssetFiles picks the known file parts out of the request. A
// non-multipart request simply carries no files.
func collectAssetFiles(c echo.Context) assetFiles {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return assetFiles{}
	}

	var files assetFiles
	if fhs := form.File["avatar"]; len(fhs) > 0 {
		files.Avatar = fhs[0]
	}
	files.Images = form.File["images"]
	if fhs := form.File["video"]; len(fhs) > 0 {
		files.Video = fhs[0]
	}
	return files
}

// uploadAssets pushes every submitted file to the media host. The image
// batch is uploaded with all members in flight concurrently and is
// all-or-nothing: the first failure cancels the batch and fails the whole
// operation. Local temp files are removed on success and failure alike.
func uploadAssets(ctx context.Context, up uploader.Uploader, files assetFiles) (assetURLs, error) {
	var urls assetURLs

	if files.Avatar != nil {
		avatarURL, err := uploadOne(ctx, up, files.Avatar, uploader.KindImage, uploader.ImageFolder)
		if err != nil {
			return assetURLs{}, err
		}
		urls.Avatar = avatarURL
	}

	if files.Video != nil {
		videoURL, err := uploadOne(ctx, up, files.Video, uploader.KindVideo, uploader.VideoFolder)
		if err != nil {
			return assetURLs{}, err
		}
		urls.Video = videoURL
	}

	if len(files.Images) > 0 {
		imageURLs := make([]string, len(files.Images))
		g, gctx := errgroup.WithContext(ctx)
		for i, fh := range files.Images {
			i, fh := i, fh
			g.Go(func() error {
				u, err := uploadOne(gctx, up, fh, uploader.KindImage, uploader.ImageFolder)
				if err != nil {
					return err
				}
				imageURLs[i] = u
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return assetURLs{}, err
		}
		urls.Images = imageURLs
	}

	return urls, nil
}

func uploadOne(ctx context.Context, up uploader.Uploader, fh *multipart.FileHeader, kind uploader.Kind, folder string) (string, error) {
	path, err := saveTemp(fh)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	return up.Upload(ctx, path, kind, folder)
}

// saveTemp spools a multipart part to a uniquely named file under the
// system temp dir so the media SDK can read it from disk.
func saveTemp(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
