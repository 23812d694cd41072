package charts

import (
	"log/slog"
	"os"
	"runtime"
	"sync"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"

	"econdash.hanlabs.org/internal/logging"
)

const koreanTypeface = "EconDash-CJK"

var registerFontOnce sync.Once

// RegisterKoreanFont installs a host CJK font as the default plot face so
// Hangul labels render instead of tofu boxes. The candidate paths vary by
// operating system; when none is found the default Liberation face stays in
// place, which only degrades label rendering.
func RegisterKoreanFont(logger *slog.Logger) {
	registerFontOnce.Do(func() {
		for _, path := range koreanFontPaths() {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			face, err := opentype.Parse(data)
			if err != nil {
				logging.LogError(logger, "failed to parse font", err,
					slog.String("path", path),
					slog.String("component", "charts"))
				continue
			}

			fnt := font.Font{Typeface: koreanTypeface}
			font.DefaultCache.Add([]font.Face{{Font: fnt, Face: face}})
			plot.DefaultFont = fnt
			plotter.DefaultFont = fnt

			logging.LogOperation(logger, "korean_font_registered",
				slog.String("path", path),
				slog.String("component", "charts"))
			return
		}

		logging.LogOperation(logger, "no_korean_font_found",
			slog.String("component", "charts"))
	})
}

func koreanFontPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\Fonts\malgun.ttf`,
			`C:\Windows\Fonts\malgunbd.ttf`,
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
			"/Library/Fonts/AppleGothic.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
			"/usr/share/fonts/nanum/NanumGothic.ttf",
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		}
	}
}
