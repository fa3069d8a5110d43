package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = func() string {
	if v := os.Getenv("API_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}()

var sportsPool = []string{"futebol", "natação", "ciclismo", "corrida", "vôlei", "basquete", "tênis", "xadrez"}

type account struct {
	ID    string
	Token string
	Email string
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	// 1. Register a handful of users with random sports.
	var accounts []account
	for i := 0; i < 15; i++ {
		a := registerUser()
		if a.Token != "" {
			accounts = append(accounts, a)
		}
	}
	if len(accounts) < 2 {
		log.Fatal("not enough users registered, aborting")
	}

	// 2. Each user follows a few random others.
	for _, a := range accounts {
		for j := 0; j < 3; j++ {
			target := accounts[gofakeit.Number(0, len(accounts)-1)]
			if target.ID != a.ID {
				createFollow(a, target.ID)
			}
		}
	}

	// 3. Everyone posts an image.
	for _, a := range accounts {
		createPost(a)
	}

	// 4. Exercise the read paths.
	first := accounts[0]
	getFeed(first)
	compareSports(first)
	listUsers()
}

func registerUser() account {
	sports := []string{
		sportsPool[gofakeit.Number(0, len(sportsPool)-1)],
		sportsPool[gofakeit.Number(0, len(sportsPool)-1)],
	}
	body := map[string]any{
		"nome":      gofakeit.FirstName(),
		"sobrenome": gofakeit.LastName(),
		"email":     gofakeit.Email(),
		"password":  "123456",
		"username":  gofakeit.Username(),
		"esportes":  sports,
		"redes_sociais": map[string]string{
			"instagram": "@" + gofakeit.Username(),
		},
	}
	b, _ := json.Marshal(body)
	resp, err := http.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(b))
	if err != nil {
		log.Printf("register: %v", err)
		return account{}
	}
	defer resp.Body.Close()
	var out struct {
		Token string `json:"token"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	log.Printf("registered %s (status %d)", body["email"], resp.StatusCode)

	a := account{Token: out.Token, Email: body["email"].(string)}
	a.ID = whoami(a)
	return a
}

func whoami(a account) string {
	req, _ := http.NewRequest(http.MethodGet, baseURL+"/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+a.Token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	var out struct {
		UserID string `json:"userId"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return out.UserID
}

func createFollow(a account, followedID string) {
	body, _ := json.Marshal(map[string]string{
		"user_id":     a.ID,
		"followed_id": followedID,
	})
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/users/follows/create", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.Token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("follow: %v", err)
		return
	}
	resp.Body.Close()
}

func createPost(a account) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, _ := w.CreateFormFile("image", "image.jpg")
	_, _ = fw.Write(gofakeit.ImageJpeg(64, 64))
	_ = w.WriteField("description", gofakeit.Sentence(8))
	_ = w.WriteField("sports", sportsPool[gofakeit.Number(0, len(sportsPool)-1)])
	_ = w.Close()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/users/%s/posts", baseURL, a.ID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+a.Token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("create post: %v", err)
		return
	}
	defer resp.Body.Close()
	log.Printf("post by %s: status %d", a.Email, resp.StatusCode)
}

func getFeed(a account) {
	resp, err := http.Get(fmt.Sprintf("%s/timeline/feed/%s?limit=10", baseURL, a.ID))
	if err != nil {
		log.Printf("feed: %v", err)
		return
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	log.Printf("feed for %s: %s", a.ID, string(b))
}

func compareSports(a account) {
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/users/%s/comparar-esportes", baseURL, a.ID), nil)
	req.Header.Set("Authorization", "Bearer "+a.Token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("comparar-esportes: %v", err)
		return
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	log.Printf("semelhantes for %s: %s", a.ID, string(b))
}

func listUsers() {
	resp, err := http.Get(baseURL + "/users")
	if err != nil {
		log.Printf("list users: %v", err)
		return
	}
	defer resp.Body.Close()
	var users []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&users)
	log.Printf("listed %d users", len(users))
}
