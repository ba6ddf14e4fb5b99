package utils

import (
	"fmt"
	"strings"

	"bookportal/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

const defaultImageTransformation = "c_fit,w_300"
const videoImageTransformation = "w_300,h_300"

// Folders whose assets live on Cloudinary; anything else is either a
// fully-qualified remote URL or a local asset and passes through untouched.
var cloudinaryFolders = []string{"exerciseimages", "userimages", "userassets", "uservideos"}

// ImageResolver rewrites backend-supplied image references into
// publicly fetchable delivery URLs.
type ImageResolver struct {
	cld      *cloudinary.Cloudinary
	imageSrc string
}

// NewImageResolver builds a resolver from the application config. The
// Cloudinary client is optional; when credentials are missing the resolver
// falls back to plain URL concatenation against CLOUDINARY_IMAGE_SRC.
func NewImageResolver() (*ImageResolver, error) {
	r := &ImageResolver{imageSrc: config.AppConfig.CloudinaryImageSrc}

	cloudName := config.AppConfig.CloudinaryCloudName
	if cloudName != "" {
		cld, err := cloudinary.NewFromParams(
			cloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
		if err != nil {
			return nil, fmt.Errorf("utils.NewImageResolver: failed to initialize Cloudinary: %w", err)
		}
		r.cld = cld
	}
	return r, nil
}

// ExternalImageURL resolves an image reference to a delivery URL.
//
// S3 originals are swapped to their pre-scaled "medium" rendition. Cloudinary
// folder assets become transformation URLs with a png extension. Everything
// else (local assets, already-qualified URLs) is returned as-is.
func (r *ImageResolver) ExternalImageURL(image string) string {
	return r.externalImageURL(image, defaultImageTransformation)
}

func (r *ImageResolver) externalImageURL(image, transformation string) string {
	if image == "" {
		return ""
	}
	if strings.Contains(image, "amazonaws.com") {
		return strings.Replace(image, "upload/", "medium/", 1)
	}

	onCloudinary := false
	for _, folder := range cloudinaryFolders {
		if strings.Contains(image, folder) {
			onCloudinary = true
			break
		}
	}
	if !onCloudinary {
		return image
	}
	// Fully-qualified Cloudinary URLs pass the folder check above; hand
	// them back untouched rather than double-wrapping.
	if strings.Contains(image, "http://") || strings.Contains(image, "https://") {
		return image
	}

	if strings.Contains(image, "uservideos") {
		transformation = videoImageTransformation
	}

	if r.cld != nil {
		asset, err := r.cld.Image(image + ".png")
		if err == nil {
			asset.Transformation = transformation
			if url, err := asset.String(); err == nil {
				return url
			}
		}
		GetLogger().Warn("falling back to plain image URL construction")
	}
	return fmt.Sprintf("%s/%s/%s.png", r.imageSrc, transformation, image)
}
