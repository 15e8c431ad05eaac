// Package web хранит HTML шаблоны и статические файлы дашборда внутри бинарника
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates разбирает все шаблоны страниц
// Имя шаблона совпадает с именем файла (dashboard.html, search_results.html и т.д.)
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html")
}

// Funcs функции шаблонов для элементов ответа провайдера.
// Элемент может оказаться не объектом, поэтому поля читаются через field
func Funcs() template.FuncMap {
	return template.FuncMap{
		"isObject": isObject,
		"field":    field,
	}
}

func isObject(item any) bool {
	_, ok := item.(map[string]any)
	return ok
}

// field возвращает значение ключа объекта или nil для отсутствующего ключа и не-объекта
func field(item any, key string) any {
	if obj, ok := item.(map[string]any); ok {
		return obj[key]
	}
	return nil
}

// Static возвращает файловую систему со статическими файлами без префикса static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static встроен при компиляции, ошибка здесь невозможна
		panic(err)
	}
	return sub
}
