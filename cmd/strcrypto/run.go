package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	strcrypto "github.com/strcrypto/strcrypto-go"
	"github.com/strcrypto/strcrypto-go/internal/keyfile"
)

// Configuration options
const (
	Key       = "key"
	Seed      = "seed"
	SaveMode  = "save"
	File      = "file"
	File1     = "file1"
	Output    = "output"
	LogFormat = "log-format"
	LogLevel  = "log-level"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	envPrefix = "STRCRYPTO"
)

const usage = `usage: strcrypto <command> [flags] [args]

commands:
  encrypt [--key K] [--seed S] [--save n|o|s] [--file F] [--file1 F1] [plaintext|-]
  decrypt --key K [ciphertext|-]
  decrypt-file FILE [FILE1]
  version

A ciphertext starting with '-' must follow "--" or be read from stdin.`

// Config holds the process resources a run uses.
type Config struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	EnvFile string
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
	}
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...) + "\n" + usage}
}

// command is everything a subcommand needs once flags are parsed.
type command struct {
	cfg    Config
	flags  *flag.FlagSet
	v      *viper.Viper
	logger *log.Logger
	engine *strcrypto.Engine
}

func run(args []string, cfg Config) error {
	if len(args) < 1 {
		return usagef("missing command")
	}

	name := args[0]
	switch name {
	case "help", "-h", "--help":
		fmt.Fprintln(cfg.Stdout, usage)
		return nil
	case "version":
		fmt.Fprintf(cfg.Stdout, "strcrypto %s\n", strcrypto.Version)
		return nil
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	fs.String(LogFormat, LogFormatText, "Log format, either 'text' or 'json'")
	fs.String(LogLevel, "info", "Log level")
	fs.String(Output, OutputText, "Output format, either 'text' or 'json'")

	var handler func(*command) error
	switch name {
	case "encrypt":
		fs.String(Key, "", "Key to encrypt with; a random key is generated when omitted")
		fs.String(Seed, "", "Seed for reproducible random keys")
		fs.String(SaveMode, "n", "Save mode: n (none), o (one file) or s (separate files)")
		fs.String(File, "", "File for the string line (or both lines in mode o)")
		fs.String(File1, "", "File for the key line in mode s")
		handler = encrypt
	case "decrypt":
		fs.String(Key, "", "Key to decrypt with")
		handler = decrypt
	case "decrypt-file":
		handler = decryptFile
	default:
		return usagef("unknown command: %s", name)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return &usageError{msg: err.Error()}
	}

	dotenv, err := readEnvFile(cfg.EnvFile)
	if err != nil {
		return err
	}

	v, err := newViper(fs, dotenv)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Stderr, v.GetString(LogFormat), v.GetString(LogLevel))
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	features, err := GetFeatureFlags(dotenv)
	if err != nil {
		return err
	}
	features.Log(logger)

	policy := strcrypto.SampleUnique
	if features.SampleWithReplacement {
		policy = strcrypto.SampleWithReplacement
	}

	opts := []strcrypto.Option{strcrypto.WithSamplingPolicy(policy)}
	if seed := v.GetString(Seed); seed != "" {
		opts = append(opts, strcrypto.WithSeed([]byte(seed)))
	}
	engine, err := strcrypto.New(opts...)
	if err != nil {
		return err
	}

	return handler(&command{
		cfg:    cfg,
		flags:  fs,
		v:      v,
		logger: logger,
		engine: engine,
	})
}

// readEnvFile returns the variables in envFile. An empty name or a missing
// file yields no variables.
func readEnvFile(envFile string) (map[string]string, error) {
	if envFile == "" {
		return nil, nil
	}

	env, err := godotenv.Read(envFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", envFile, err)
	}
	return env, nil
}

// newViper binds the flag set and the STRCRYPTO_* environment. Values from
// dotenv rank below the real environment and explicit flags.
func newViper(fs *flag.FlagSet, dotenv map[string]string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	values := make(map[string]any)
	for k, val := range dotenv {
		name, ok := strings.CutPrefix(k, envPrefix+"_")
		if !ok {
			continue
		}
		values[strings.ReplaceAll(strings.ToLower(name), "_", "-")] = val
	}
	if len(values) == 0 {
		return v, nil
	}
	if err := v.MergeConfigMap(values); err != nil {
		return nil, err
	}
	return v, nil
}

// input returns the first positional argument, or stdin when it is absent
// or "-". One trailing newline is dropped from stdin.
func (c *command) input() (string, error) {
	if arg := c.flags.Arg(0); arg != "" && arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(c.cfg.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func (c *command) print(text string, value any) error {
	switch c.v.GetString(Output) {
	case OutputJSON:
		return json.NewEncoder(c.cfg.Stdout).Encode(value)
	case OutputText:
		_, err := io.WriteString(c.cfg.Stdout, text)
		return err
	default:
		return &usageError{msg: fmt.Sprintf("unsupported output format '%s'", c.v.GetString(Output))}
	}
}

func encrypt(c *command) error {
	mode, err := strcrypto.ParseSaveMode(c.v.GetString(SaveMode))
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	plaintext, err := c.input()
	if err != nil {
		return err
	}

	var ciphertext string
	key := c.v.GetString(Key)
	if key == "" && !c.flags.Changed(Key) {
		ciphertext, key, err = c.engine.EncryptRandom(plaintext)
		c.logger.WithField("policy", c.engine.Policy()).Debug("generated random key")
	} else {
		ciphertext, err = c.engine.Encrypt(plaintext, key)
	}
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	written, err := strcrypto.Save(ciphertext, key, mode, c.v.GetString(File), c.v.GetString(File1))
	for _, path := range written {
		c.logger.WithField("path", path).Info("saved encrypted string and key")
	}
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if mode == strcrypto.SaveNone {
		c.logger.Debug("not saving the encrypted string and key")
	}

	text := string(keyfile.Line(keyfile.FieldString, ciphertext)) + string(keyfile.Line(keyfile.FieldKey, key))
	return c.print(text, strcrypto.Record{Ciphertext: ciphertext, Key: key})
}

type plaintextOutput struct {
	Plaintext string `json:"plaintext"`
}

func decrypt(c *command) error {
	key := c.v.GetString(Key)
	if key == "" {
		return usagef("decrypt requires --key (or %s_KEY)", envPrefix)
	}

	ciphertext, err := c.input()
	if err != nil {
		return err
	}

	plaintext, err := c.engine.Decrypt(ciphertext, key)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	return c.print(plaintext+"\n", plaintextOutput{Plaintext: plaintext})
}

func decryptFile(c *command) error {
	files := c.flags.Args()
	if len(files) < 1 || len(files) > 2 {
		return usagef("decrypt-file takes one or two files, got %d", len(files))
	}

	rec, err := strcrypto.Load(files[0], files[1:]...)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	c.logger.WithField("files", files).Debug("loaded encrypted string and key")

	plaintext, err := c.engine.Decrypt(rec.Ciphertext, rec.Key)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	return c.print(plaintext+"\n", plaintextOutput{Plaintext: plaintext})
}
