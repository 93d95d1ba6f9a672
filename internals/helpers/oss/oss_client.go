package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var maxUploadSize = int64(5 * 1024 * 1024)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   WebP conversion (ENV-driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // resize bound, keep aspect
	MaxH    int
	Quality float32 // lossy quality
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// decodeImage sniffs the MIME type and decodes jpeg/png/webp.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("unsupported image format: %s / %s", ct, ext)
		}
	}
	return img, err
}

// convertToWebP resizes within MaxW x MaxH and encodes lossy WebP.
func convertToWebP(all []byte, filename string, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > opt.MaxW || b.Dy() > opt.MaxH {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.CatmullRom)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: opt.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS upload
======================================================================= */

func newBucket() (*oss.Bucket, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	secret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || secret == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env not configured")
	}

	client, err := oss.New(endpoint, keyID, secret)
	if err != nil {
		return nil, err
	}
	return client.Bucket(bucketName)
}

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return reUnsafe.ReplaceAllString(filename, "_")
}

// GenerateObjectKey builds a collision-free object name under folder.
func GenerateObjectKey(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(sanitizeFilename(originalFilename), filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), base)
}

// UploadImage converts a multipart image to WebP and puts it in the
// bucket. Returns the public URL.
func UploadImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("image exceeds %d bytes", maxUploadSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	data, err := convertToWebP(all, fileHeader.Filename, defaultWebPOptionsFromEnv())
	if err != nil {
		return "", fmt.Errorf("webp convert: %w", err)
	}

	bucket, err := newBucket()
	if err != nil {
		return "", err
	}

	key := GenerateObjectKey(folder, fileHeader.Filename)
	if err := bucket.PutObject(key, bytes.NewReader(data), oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}

	return PublicURL(key), nil
}

// PublicURL joins the configured bucket URL with an object key.
func PublicURL(key string) string {
	base := strings.TrimRight(getEnv("OSS_BUCKET_URL"), "/")
	return base + "/" + key
}

// DeleteObject removes an object by its public URL. Unknown URLs are
// ignored so entity deletes never fail on storage cleanup.
func DeleteObject(publicURL string) error {
	base := strings.TrimRight(getEnv("OSS_BUCKET_URL"), "/")
	if base == "" || !strings.HasPrefix(publicURL, base+"/") {
		return nil
	}
	key := strings.TrimPrefix(publicURL, base+"/")

	bucket, err := newBucket()
	if err != nil {
		return err
	}
	return bucket.DeleteObject(key)
}
