package config

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary returns nil without error when no URL is configured;
// image uploads are then refused.
func ConnectCloudinary(cloudinaryURL string) (*cloudinary.Cloudinary, error) {
	if cloudinaryURL == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudinary url: %w", err)
	}
	cld.Config.URL.Secure = true
	return cld, nil
}
