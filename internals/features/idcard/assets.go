package idcard

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Branding files are looked up in order; deployments differ in where the
// frontend build lands relative to the API binary.
var (
	logoSearchPaths = []string{
		"assets/abhmlogo.jpg",
		"public/abhmlogo.jpg",
		"../frontend/public/abhmlogo.jpg",
	}
	flagSearchPaths = []string{
		"assets/abhmflag.png",
		"public/abhmflag.png",
		"../frontend/public/abhmflag.png",
	}
)

// ResolveAssets loads the logo and flag as data URIs. When a file cannot be
// found locally the absolute URL under baseURL is used instead so the card
// still renders in a browser.
func ResolveAssets(baseURL string) CardAssets {
	return CardAssets{
		LogoSrc: resolveOne(logoSearchPaths, baseURL+"/abhmlogo.jpg"),
		FlagSrc: resolveOne(flagSearchPaths, baseURL+"/abhmflag.png"),
	}
}

func resolveOne(paths []string, urlFallback string) template.URL {
	for _, p := range paths {
		uri, err := fileDataURI(p)
		if err == nil {
			return template.URL(uri)
		}
	}
	log.Printf("[IDCard] asset not found locally (tried %d paths), falling back to %s", len(paths), urlFallback)
	return template.URL(urlFallback)
}

// fileDataURI reads a local image and encodes it as a data URI.
func fileDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mime := mimeFromExt(filepath.Ext(path))
	if mime == "" {
		return "", fmt.Errorf("unsupported image type: %s", path)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func mimeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
