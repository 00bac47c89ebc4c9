package ordering

import "testing"

func TestValidatePhotoExtension(t *testing.T) {
	for _, name := range []string{"menu.jpg", "menu.JPEG", "menu.png", "menu.webp", "menu.heic"} {
		if err := ValidatePhotoExtension(name); err != nil {
			t.Fatalf("%s should be accepted: %v", name, err)
		}
	}

	for _, name := range []string{"menu", "menu.pdf", "menu.exe", "menu.txt"} {
		if err := ValidatePhotoExtension(name); err == nil {
			t.Fatalf("%s should be rejected", name)
		}
	}
}
