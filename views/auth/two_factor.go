package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	qrcode "github.com/skip2/go-qrcode"

	"topiray/views/components"
	"topiray/views/internal/markup"
	"topiray/views/theme"
)

const (
	// CodeLength is the number of digits in a verification code.
	CodeLength = 6
	// QRCodeSize is the pixel width of the generated QR code image.
	QRCodeSize = 256
	// DefaultLearnMoreURL explains authenticator apps.
	DefaultLearnMoreURL = "https://support.google.com/accounts/answer/1066447?hl=en"
	// BackupCodesFilename is the suggested name of the downloaded backup codes.
	BackupCodesFilename = "backup-codes.txt"
)

// TwoFactorSetupProps configures TwoFactorSetup. QRCodeURI is usually an
// otpauth:// URI; nothing is drawn until it is known.
type TwoFactorSetupProps struct {
	NextURL      string
	CancelURL    string
	QRCodeURI    string
	SharedKey    string
	BackRoute    string
	LearnMoreURL string
	IsLoading    bool
	ClassName    string
}

// TwoFactorSetup shows the authenticator enrollment QR code.
func TwoFactorSetup(p TwoFactorSetupProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		var qr string
		if p.QRCodeURI != "" && !p.IsLoading {
			qr, err = QRCodeDataURI(p.QRCodeURI)
			if err != nil {
				return err
			}
		}

		m := markup.New(w)
		openScreen(m, cfg, "two-factor-setup", p.ClassName)
		writeBackArrow(ctx, m, cfg, orDefault(p.BackRoute, DefaultTwoFactorSetupBackRoute), p.IsLoading)
		writeTitle(m, "Multi-Factor Authentication", "")
		m.Open("div", "topiray-auth__description")
		m.Raw("<span>").Text("Use your authentication app to scan this QR code. If you don't have an authentication app on your device, you'll need to install one now. ").Raw("</span>")
		m.Raw("<a").Attr("class", "topiray-link").URL("href", orDefault(p.LearnMoreURL, DefaultLearnMoreURL)).Raw(` target="_blank" rel="noopener noreferrer">Learn more</a>`)
		m.Close("div")

		m.Open("div", "topiray-qr")
		switch {
		case p.IsLoading:
			m.Raw(`<div class="topiray-qr__placeholder" aria-busy="true"><span class="topiray-spinner" aria-hidden="true"></span></div>`)
		case qr != "":
			m.Raw("<img").Attr("class", "topiray-qr__image").Attr("alt", "QR code for your authentication app").Attr("src", qr)
			m.Attr("width", fmt.Sprint(QRCodeSize)).Attr("height", fmt.Sprint(QRCodeSize)).Raw(">")
		default:
			m.Raw(`<div class="topiray-qr__placeholder"><span>QR Code will appear here</span></div>`)
		}
		if p.SharedKey != "" {
			m.Open("div", "topiray-qr__key").Text("Manual entry key: " + p.SharedKey).Close("div")
		}
		m.Close("div")

		m.Open("div", "topiray-auth__actions")
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:    "Cancel",
			Href:     p.CancelURL,
			Variant:  components.ButtonSecondary,
			Disabled: p.IsLoading,
		}))
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Next",
			Href:        p.NextURL,
			LoadingText: "Loading...",
			IsLoading:   p.IsLoading,
		}))
		m.Close("div")

		m.Close("div")
		return m.Err()
	})
}

// QRCodeDataURI encodes uri as a PNG QR code and returns it as a data URI.
func QRCodeDataURI(uri string) (string, error) {
	png, err := qrcode.Encode(uri, qrcode.Medium, QRCodeSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// TwoFactorVerifyProps configures TwoFactorSetupEnterVerification. Code
// prefills the digit inputs after a failed attempt.
type TwoFactorVerifyProps struct {
	Action    string
	BackRoute string
	Code      string
	Error     string
	IsLoading bool
	ClassName string
}

// TwoFactorSetupEnterVerification asks for the six digit code shown by the
// authenticator app.
func TwoFactorSetupEnterVerification(p TwoFactorVerifyProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		digits := []rune(digitsOnly(p.Code))

		m := markup.New(w)
		openScreen(m, cfg, "two-factor-verify", p.ClassName)
		writeBackArrow(ctx, m, cfg, orDefault(p.BackRoute, DefaultTwoFactorVerifyBackRoute), p.IsLoading)
		writeTitle(m, "Enter your verification code", "Enter the code that you see in your authenticator app")
		m.Component(ctx, components.AlertMessage(components.AlertProps{Message: p.Error, Type: components.AlertError}))

		openForm(m, p.Action, "")
		m.Open("div", "topiray-code")
		for i := 0; i < CodeLength; i++ {
			value := ""
			if i < len(digits) {
				value = string(digits[i])
			}
			m.Raw("<input").Attr("class", "topiray-code__digit").Attr("type", "text").Attr("name", FieldDigit)
			m.Attr("inputmode", "numeric").Attr("pattern", "[0-9]").Attr("maxlength", "1")
			m.Attr("aria-label", fmt.Sprintf("Digit %d", i+1)).AttrIf("value", value)
			if i == 0 {
				m.Attr("autocomplete", "one-time-code").Flag("autofocus", !p.IsLoading)
			}
			m.Flag("required", true).Flag("disabled", p.IsLoading).Raw(">")
		}
		m.Close("div")
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Verify",
			LoadingText: "Verifying...",
			Type:        "submit",
			FullWidth:   true,
			IsLoading:   p.IsLoading,
		}))
		m.Close("form")
		m.Open("div", "topiray-caption").Text("You can also paste your 6-digit code").Close("div")

		m.Close("div")
		return m.Err()
	})
}

// TwoFactorCompleteProps configures TwoFactorSetupComplete.
type TwoFactorCompleteProps struct {
	DoneURL     string
	BackupCodes []string
	IsLoading   bool
	ClassName   string
}

// TwoFactorSetupComplete lists the single-use backup codes in columns of
// three and offers them as a text download.
func TwoFactorSetupComplete(p TwoFactorCompleteProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		m := markup.New(w)
		openScreen(m, cfg, "two-factor-complete", p.ClassName)
		writeTitle(m, "You're all set", "")
		m.Open("div", "topiray-auth__description")
		m.Raw("<p>Now you can use the mobile authenticator app to get an authentication code any time you log in.</p>")
		m.Raw("<p>Save these single-use backup codes in a safe place.</p>")
		m.Close("div")

		if len(p.BackupCodes) > 0 {
			m.Open("div", "topiray-backup-codes")
			for _, group := range GroupCodes(p.BackupCodes, 3) {
				m.Open("div", "topiray-backup-codes__column")
				for _, code := range group {
					m.Open("p", "topiray-backup-codes__code").Text(code).Close("p")
				}
				m.Close("div")
			}
			m.Close("div")

			m.Open("div", "topiray-backup-codes__actions")
			if p.IsLoading {
				m.Raw(`<span class="topiray-link topiray-link--disabled" aria-disabled="true">Download</span>`)
			} else {
				m.Raw("<a").Attr("class", "topiray-link").Attr("href", BackupCodesDataURI(p.BackupCodes))
				m.Attr("download", BackupCodesFilename).Raw(">Download</a>")
			}
			m.Close("div")
		}

		m.Open("div", "topiray-caption")
		m.Text("These backup codes let you log in if you can't receive a text message or don't have access to any of your other two-factor authentication methods.")
		m.Close("div")

		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Done",
			Href:        p.DoneURL,
			LoadingText: "Loading...",
			FullWidth:   true,
			IsLoading:   p.IsLoading,
		}))
		m.Close("div")
		return m.Err()
	})
}

// BackupCodesDataURI returns the codes, one per line, as a plain text data URI.
func BackupCodesDataURI(codes []string) string {
	return "data:text/plain;charset=utf-8," + url.PathEscape(strings.Join(codes, "\n"))
}
