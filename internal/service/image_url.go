package service

import (
	"strconv"
	"strings"

	"github.com/emmaderbe/SocialApp/internal/config"
)

const idPlaceholder = "{id}"

// ImageURLBuilder derives an image locator from a post id.
type ImageURLBuilder struct {
	template string
}

// NewImageURLBuilder returns a builder for template. Every "{id}" is replaced by the post id;
// an empty template falls back to config.DefaultImageURLTemplate.
func NewImageURLBuilder(template string) ImageURLBuilder {
	template = strings.TrimSpace(template)
	if template == "" {
		template = config.DefaultImageURLTemplate
	}
	return ImageURLBuilder{template: template}
}

func (b ImageURLBuilder) URL(id int64) string {
	template := b.template
	if template == "" {
		template = config.DefaultImageURLTemplate
	}
	return strings.ReplaceAll(template, idPlaceholder, strconv.FormatInt(id, 10))
}
