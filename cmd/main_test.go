package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-30"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-30") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel, pagePath,
		jwtSecret, jwtExpSecond,
		authMinDelayMs, authMaxDelayMs, authRegisterExtraMs,
		strictPassword,
		demoEmail, demoPassword, demoName,
		matrixWidth, matrixHeight, matrixIntervalMs,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" || pagePath != "web/index.html" {
		t.Errorf("unexpected app config: %v/%v/%v/%v", appHost, appPort, logLevel, pagePath)
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtExpSecond != 3600 {
		t.Errorf("unexpected jwt config")
	}

	// Mock backend
	if authMinDelayMs != 1000 || authMaxDelayMs != 3000 || authRegisterExtraMs != 500 || strictPassword {
		t.Errorf("unexpected auth backend config")
	}

	// Demo account
	if demoEmail != "demo@algorhythm.dev" || demoPassword != "Demo1234" || demoName != "Demo User" {
		t.Errorf("unexpected demo account config")
	}

	// Matrix effect
	if matrixWidth != 64 || matrixHeight != 24 || matrixIntervalMs != 80 {
		t.Errorf("unexpected matrix config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_PAGE_PATH", "static/login.html")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("AUTH_MIN_DELAY_MS", "10")
	os.Setenv("AUTH_MAX_DELAY_MS", "20")
	os.Setenv("AUTH_REGISTER_EXTRA_MS", "5")
	os.Setenv("AUTH_STRICT_PASSWORD", "true")

	os.Setenv("DEMO_EMAIL", "user@example.com")
	os.Setenv("DEMO_PASSWORD", "Pass1234")
	os.Setenv("DEMO_NAME", "Some User")

	os.Setenv("MATRIX_WIDTH", "32")
	os.Setenv("MATRIX_HEIGHT", "12")
	os.Setenv("MATRIX_INTERVAL_MS", "50")

	appHost, appPort, logLevel, pagePath,
		jwtSecret, jwtExpSecond,
		authMinDelayMs, authMaxDelayMs, authRegisterExtraMs,
		strictPassword,
		demoEmail, demoPassword, demoName,
		matrixWidth, matrixHeight, matrixIntervalMs,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" || pagePath != "static/login.html" {
		t.Errorf("unexpected app config: %v/%v/%v/%v", appHost, appPort, logLevel, pagePath)
	}
	if jwtSecret != "supersecret" || jwtExpSecond != 300 {
		t.Errorf("unexpected jwt config")
	}
	if authMinDelayMs != 10 || authMaxDelayMs != 20 || authRegisterExtraMs != 5 || !strictPassword {
		t.Errorf("unexpected auth backend config")
	}
	if demoEmail != "user@example.com" || demoPassword != "Pass1234" || demoName != "Some User" {
		t.Errorf("unexpected demo account config")
	}
	if matrixWidth != 32 || matrixHeight != 12 || matrixIntervalMs != 50 {
		t.Errorf("unexpected matrix config")
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("JWT_EXP_SECOND", "not-a-number")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for invalid JWT_EXP_SECOND, got nil")
	}
}
