//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, map[string]interface{}, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out, err
}

func mustSend(method, url, token string, body interface{}) map[string]interface{} {
	resp, out, err := sendRequest(method, url, token, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(out)
	return out
}

func main() {
	color.Cyan("🚀 Starting FAQ Chat API Test\n")

	color.Yellow("\n[CHAT] 1. Open session")
	opened := mustSend("POST", "/chat/v1/sessions", "", nil)
	data, _ := opened["data"].(map[string]interface{})
	sessionID, _ := data["session_id"].(string)
	if sessionID == "" {
		color.Red("No session id returned")
		os.Exit(1)
	}

	for i, text := range []string{"hola", "cuanto tarda el envio", "y cuanto cuesta", "algo sin sentido", "chau"} {
		color.Yellow("\n[CHAT] %d. Send %q", i+2, text)
		mustSend("POST", "/chat/v1/sessions/"+sessionID+"/messages", "", map[string]string{"text": text})
	}

	color.Yellow("\n[CHAT] History")
	mustSend("GET", "/chat/v1/sessions/"+sessionID+"/history", "", nil)

	email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Magenta("\nADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin checks")
		return
	}

	color.Yellow("\n[ADMIN] Login")
	login := mustSend("POST", "/admin/v1/login", "", map[string]string{"email": email, "password": password})
	loginData, _ := login["data"].(map[string]interface{})
	token, _ := loginData["access_token"].(string)

	color.Yellow("\n[ADMIN] Knowledge base status")
	mustSend("GET", "/admin/v1/knowledge-base", token, nil)

	color.Yellow("\n[ADMIN] Analytics")
	mustSend("GET", "/admin/v1/analytics", token, nil)
}
