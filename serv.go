package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	http "github.com/valyala/fasthttp"

	"github.com/model-collapse/pick-io/pick"
)

func initialize(path string) (err error) {
	if err = LoadConfig(path); err != nil {
		return
	}

	if _, err = pick.LookupEncoding(GConf.Encoding); err != nil {
		return
	}

	log.Printf("data dir = %s, encoding = %s", GConf.DataDir, GConf.Encoding)
	return
}

// docName returns the doc query argument when it names a single document.
func docName(c *http.RequestCtx) (string, bool) {
	name := string(c.QueryArgs().Peek("doc"))
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		c.Error("bad doc name", http.StatusBadRequest)
		return "", false
	}
	return name, true
}

func writeJSON(c *http.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Err [json] %v", err)
		c.Error(err.Error(), http.StatusInternalServerError)
		return
	}

	c.SetStatusCode(status)
	c.SetContentType("application/json")
	c.Write(data)
}

type shapesResponse struct {
	pick.Result
	Error string `json:"error,omitempty"`
}

func handleDocuments(c *http.RequestCtx) {
	docs, err := pick.ListDocuments(GConf.DataDir)
	if err != nil {
		log.Printf("Err [list] %v", err)
		c.Error(err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(c, http.StatusOK, docs)
}

func handleShapes(c *http.RequestCtx) {
	name, ok := docName(c)
	if !ok {
		return
	}

	r := pick.Read(GConf.DataDir, name, GConf.Options())
	resp := shapesResponse{Result: r}
	status := http.StatusOK
	switch r.Status {
	case pick.StatusNotFound:
		status = http.StatusNotFound
	case pick.StatusParseError:
		status = http.StatusUnprocessableEntity
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
		log.Printf("Err [read %s] %v", name, r.Err)
	}

	writeJSON(c, status, resp)
}

func handleEntities(c *http.RequestCtx) {
	name, ok := docName(c)
	if !ok {
		return
	}

	ents, err := pick.ReadEntities(GConf.DataDir, name, GConf.Options())
	if err != nil {
		log.Printf("Err [entities %s] %v", name, err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, pick.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.Error(err.Error(), status)
		return
	}

	if ents == nil {
		ents = []pick.Entity{}
	}
	writeJSON(c, http.StatusOK, ents)
}

func handlePreview(c *http.RequestCtx) {
	name, ok := docName(c)
	if !ok {
		return
	}

	path := pick.Layout{Folder: GConf.DataDir}.ImagePath(name)
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		log.Printf("No such image %s", path)
		c.Error("no such image", http.StatusNotFound)
		return
	}
	defer img.Close()

	if string(c.QueryArgs().Peek("box")) == "true" {
		r := pick.Read(GConf.DataDir, name, GConf.Options())
		if !r.OK() {
			log.Printf("Err [read %s] %v", name, r.Err)
		}
		drawShapesOnImage(&img, r.Shapes)
	}

	data, err := gocv.IMEncode(gocv.JPEGFileExt, img)
	if err != nil {
		log.Printf("Err [encode] %v", err)
		c.Error(err.Error(), http.StatusInternalServerError)
		return
	}

	c.SetContentType("image/jpeg")
	c.Write(data)
}

func handle(c *http.RequestCtx) {
	if !c.IsGet() {
		c.Error("method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch string(c.Path()) {
	case "/documents":
		handleDocuments(c)
	case "/shapes":
		handleShapes(c)
	case "/entities":
		handleEntities(c)
	case "/preview":
		handlePreview(c)
	default:
		c.Error("not found", http.StatusNotFound)
	}
}

func main() {
	conf := flag.String("conf", "./conf.json", "config file")
	flag.Parse()

	if err := initialize(*conf); err != nil {
		log.Fatal(err)
	}

	log.Printf("Serving on %s...", GConf.Listen)
	if err := http.ListenAndServe(GConf.Listen, handle); err != nil {
		log.Fatal(err)
	}
}
