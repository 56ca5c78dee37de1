package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/codec"
	"github.com/erraggy/xutil/generate"
	"github.com/erraggy/xutil/internal/cliutil"
)

var textRadix = map[string]int{"base2": 2, "base8": 8, "base10": 10, "base16": 16}

const schemeHelp = `Schemes: base32, base58, base64, url, html, morse, rot13, caesar,
base2, base8, base10, base16 (space separated code points).`

func encodeText(scheme, text string, shift int) (string, error) {
	switch scheme {
	case "base32", "base58", "base64":
		return codec.Encode(codec.Base(scheme), text)
	case "url":
		return codec.URLEncode(text)
	case "html":
		return codec.HTMLEscape(text), nil
	case "morse":
		return codec.ToMorse(text)
	case "rot13":
		return codec.ROT13(text)
	case "caesar":
		return codec.Caesar(text, shift)
	}
	if radix, ok := textRadix[scheme]; ok {
		return codec.TextToBase(text, radix)
	}
	return "", fmt.Errorf("unknown scheme %q", scheme)
}

func decodeText(scheme, text string, shift int) (string, error) {
	switch scheme {
	case "base32", "base58", "base64":
		return codec.Decode(codec.Base(scheme), text)
	case "url":
		return codec.URLDecode(text)
	case "html":
		return codec.HTMLUnescape(text), nil
	case "morse":
		return codec.FromMorse(text)
	case "rot13":
		return codec.Caesar(text, -codec.ROT13Shift)
	case "caesar":
		return codec.Caesar(text, -shift)
	case "ulid":
		t, err := generate.ULIDTime(text)
		if err != nil {
			return "", err
		}
		return t.Format(time.RFC3339Nano), nil
	}
	if radix, ok := textRadix[scheme]; ok {
		return codec.BaseToText(text, radix)
	}
	return "", fmt.Errorf("unknown scheme %q", scheme)
}

func newCodecCmd(opts *rootOptions, name string, fn func(scheme, text string, shift int) (string, error)) *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:  name + " <scheme> [text...]",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme := strings.ToLower(args[0])
			if scheme == "caesar" && !cmd.Flags().Changed("shift") {
				return fmt.Errorf("caesar requires --shift")
			}
			text, err := textArg(cmd, args[1:])
			if err != nil {
				return err
			}
			out, err := fn(scheme, text, shift)
			if err != nil {
				return err
			}
			return opts.output(cmd, map[string]string{"scheme": scheme, "result": out}, out)
		},
	}
	cmd.Flags().IntVar(&shift, "shift", 0, "caesar shift (-100 to 100)")
	return cmd
}

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	cmd := newCodecCmd(opts, "encode", encodeText)
	cmd.Short = "Encode text"
	cmd.Long = "Encode text given as arguments or on stdin.\n\n" + schemeHelp
	cmd.Example = `  xutil encode base64 hello
  echo -n "a b" | xutil encode url
  xutil encode caesar --shift 3 abc`
	return cmd
}

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	cmd := newCodecCmd(opts, "decode", decodeText)
	cmd.Short = "Decode text"
	cmd.Long = "Decode text given as arguments or on stdin.\n\n" + schemeHelp +
		"\nThe ulid scheme prints the timestamp embedded in a ULID."
	cmd.Example = `  xutil decode base64 aGVsbG8=
  xutil decode morse "... --- ..."
  xutil decode ulid 01ARZ3NDEKTSV4RRFFQ69G5FAV`
	return cmd
}

func newBaseCmd(opts *rootOptions) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:     "base <number>",
		Short:   "Convert an integer between bases 2 to 36",
		Example: "  xutil base 255 --to 16\n  xutil base ff --from 16 --to 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := codec.ConvertBase(args[0], from, to)
			if err != nil {
				return err
			}
			return opts.output(cmd, map[string]string{"result": out}, out)
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "input base")
	cmd.Flags().IntVar(&to, "to", 2, "output base")
	return cmd
}

func newHashCmd(opts *rootOptions) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print the hex digest of text",
		Long: fmt.Sprintf("Print the lower-case hex digest of text given as arguments or on stdin.\n\nAlgorithms: %v",
			codec.HashAlgorithms()),
		Example: "  xutil hash hello\n  xutil hash -a blake2b-256 < file.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			digest, err := codec.Hash(codec.HashAlgorithm(algorithm), text)
			if err != nil {
				return err
			}
			return opts.output(cmd, map[string]string{"algorithm": algorithm, "digest": digest}, digest)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(codec.SHA256), "digest algorithm")
	return cmd
}

func newJWTCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Sign and verify JSON Web Tokens",
	}
	cmd.AddCommand(newJWTEncodeCmd(opts), newJWTDecodeCmd(opts))
	return cmd
}

func newJWTEncodeCmd(opts *rootOptions) *cobra.Command {
	var (
		secret    string
		algorithm string
		expiry    int
	)

	cmd := &cobra.Command{
		Use:     "encode [payload-json]",
		Short:   "Sign a JSON payload",
		Example: `  xutil jwt encode --secret s3cr3t-key '{"sub":"42"}' --expiry 60`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			var payload map[string]any
			if err := json.Unmarshal([]byte(text), &payload); err != nil {
				return fmt.Errorf("payload must be a JSON object: %w", err)
			}
			res, err := codec.EncodeJWT(codec.JWTEncodeRequest{
				Payload:       payload,
				Secret:        secret,
				Algorithm:     codec.JWTAlgorithm(algorithm),
				ExpiryMinutes: expiry,
			})
			if err != nil {
				return err
			}
			return opts.output(cmd, res, res.Token)
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "HMAC secret or PEM encoded RSA private key")
	cmd.Flags().StringVar(&algorithm, "algorithm", string(codec.HS256), "signing algorithm")
	cmd.Flags().IntVar(&expiry, "expiry", 0, "expiry in minutes from now; 0 means no exp claim")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func newJWTDecodeCmd(opts *rootOptions) *cobra.Command {
	var (
		secret     string
		algorithm  string
		skipExpiry bool
	)

	cmd := &cobra.Command{
		Use:     "decode [token]",
		Short:   "Verify a token and print its claims",
		Example: "  xutil jwt decode --secret s3cr3t-key eyJhbGciOi...",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			res, err := codec.DecodeJWT(codec.JWTDecodeRequest{
				Token:        strings.TrimSpace(token),
				Secret:       secret,
				Algorithm:    codec.JWTAlgorithm(algorithm),
				VerifyExpiry: !skipExpiry,
			})
			if err != nil {
				return err
			}
			return opts.outputFunc(cmd, res, func(w io.Writer) {
				// Claims decoded from JSON always marshal.
				out, _ := json.MarshalIndent(res.Payload, "", "  ")
				cliutil.Writef(w, "%s\n", out)
			})
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "HMAC secret or PEM encoded RSA public key")
	cmd.Flags().StringVar(&algorithm, "algorithm", string(codec.HS256), "signing algorithm")
	cmd.Flags().BoolVar(&skipExpiry, "skip-expiry", false, "accept expired tokens")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}
