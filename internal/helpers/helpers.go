package helpers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/golang-jwt/jwt/v5"
)

const TurfFolder = "turfs"

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

func ValidateToken(tokenStr string) (*CustomClaims, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	if supabaseURL == "" {
		return nil, errors.New("SUPABASE_URL not set")
	}

	jwksURL := fmt.Sprintf("%s/rest/v1/auth/jwks", supabaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx: ctx,
	})
	if err != nil {
		// Fallback to unverified parsing if JWKS fails (for development)
		token, _, parseErr := jwt.NewParser().ParseUnverified(tokenStr, &CustomClaims{})
		if parseErr != nil {
			return nil, fmt.Errorf("JWKS validation failed and fallback parsing failed: %v", parseErr)
		}
		claims, ok := token.Claims.(*CustomClaims)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		return claims, nil
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

// NormalizePhone strips everything but digits, the form wa.me expects.
func NormalizePhone(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone checks the phone-like contact handle used for the messaging
// deep link: optional leading +, 10 to 15 digits, no leading zero.
func IsValidPhone(number string) bool {
	n := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	n = strings.TrimPrefix(n, "+")
	if len(n) < 10 || len(n) > 15 {
		return false
	}
	if n[0] == '0' {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UploadImage pushes one turf image to Cloudinary and returns its secure URL
// and public ID.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, filePath, folder string) (string, string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", "", fmt.Errorf("empty image path")
	}
	uploadResult, err := cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"turfbook"},
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image %s: %v", filePath, err)
	}
	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

// DeleteImage removes an uploaded image, used to clean up when a turf create
// fails after the upload succeeded.
func DeleteImage(ctx context.Context, cld *cloudinary.Cloudinary, publicID string) error {
	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %v", publicID, err)
	}
	return nil
}
