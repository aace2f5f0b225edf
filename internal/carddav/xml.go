package carddav

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/iudanet/carddavsync/internal/models"
)

const (
	nsDAV     = "DAV:"
	nsCardDAV = "urn:ietf:params:xml:ns:carddav"

	vcardExt = ".vcf"
)

// Серверы используют префиксы D:, d:, C:, card: и произвольные, а иногда
// пространство имён по умолчанию. encoding/xml сопоставляет теги без
// пространства имён по локальному имени, поэтому ответы разбираются как
// есть: текст address-data (включая CDATA) не переписывается.
type multistatus struct {
	XMLName   xml.Name     `xml:"multistatus"`
	Responses []msResponse `xml:"response"`
}

type msResponse struct {
	Href      string     `xml:"href"`
	Status    string     `xml:"status"`
	Propstats []propstat `xml:"propstat"`
}

type propstat struct {
	Status string `xml:"status"`
	Prop   prop   `xml:"prop"`
}

type prop struct {
	ResourceType *resourceType `xml:"resourcetype"`
	ETag         string        `xml:"getetag"`
	LastModified string        `xml:"getlastmodified"`
	ContentType  string        `xml:"getcontenttype"`
	DisplayName  string        `xml:"displayname"`
	AddressData  string        `xml:"address-data"`
}

type resourceType struct {
	Collection  *struct{} `xml:"collection"`
	AddressBook *struct{} `xml:"addressbook"`
}

// props сливает свойства из всех успешных propstat одного response
func (r *msResponse) props() prop {
	var p prop
	for _, ps := range r.Propstats {
		if !statusOK(ps.Status) {
			continue
		}
		if ps.Prop.ResourceType != nil {
			p.ResourceType = ps.Prop.ResourceType
		}
		p.ETag = firstNonEmpty(p.ETag, ps.Prop.ETag)
		p.LastModified = firstNonEmpty(p.LastModified, ps.Prop.LastModified)
		p.ContentType = firstNonEmpty(p.ContentType, ps.Prop.ContentType)
		p.DisplayName = firstNonEmpty(p.DisplayName, ps.Prop.DisplayName)
		p.AddressData = firstNonEmpty(p.AddressData, ps.Prop.AddressData)
	}
	return p
}

func parseMultistatus(body []byte) (*multistatus, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, parseError("empty multistatus body")
	}
	var ms multistatus
	if err := xml.Unmarshal(body, &ms); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &ms, nil
}

// parseElements превращает multistatus в список контактов коллекции.
// Контакт определяется по content-type (vcard) или по расширению href.
// Сама коллекция и вложенные коллекции пропускаются. Ответ, который не
// подходит ни под одно правило, считается ошибкой разбора.
func parseElements(body []byte, basePath string) ([]models.RemoteElement, error) {
	ms, err := parseMultistatus(body)
	if err != nil {
		return nil, err
	}

	elements := make([]models.RemoteElement, 0, len(ms.Responses))
	for i := range ms.Responses {
		r := &ms.Responses[i]
		hrefPath, err := hrefToPath(r.Href)
		if err != nil {
			return nil, err
		}
		if hrefPath == "" {
			return nil, parseError("response %d has no href", i)
		}
		// ресурс отсутствует (например, в ответе multiget)
		if !statusOK(r.Status) {
			continue
		}

		p := r.props()
		switch {
		case isCollection(hrefPath, basePath, p):
			continue
		case isContact(hrefPath, p):
			id := resourceIDFromPath(hrefPath)
			if id == "" {
				continue
			}
			elements = append(elements, models.RemoteElement{
				ID:           id,
				ETag:         cleanETag(p.ETag),
				LastModified: strings.TrimSpace(p.LastModified),
				VCard:        p.AddressData,
			})
		default:
			return nil, parseError("unrecognized resource %q (content type %q)", hrefPath, p.ContentType)
		}
	}
	return elements, nil
}

// parseAddressBooks выбирает из multistatus дочерние адресные книги
func parseAddressBooks(body []byte, base *url.URL) ([]models.AddressBook, error) {
	ms, err := parseMultistatus(body)
	if err != nil {
		return nil, err
	}

	var books []models.AddressBook
	for i := range ms.Responses {
		r := &ms.Responses[i]
		hrefPath, err := hrefToPath(r.Href)
		if err != nil {
			return nil, err
		}
		if hrefPath == "" {
			return nil, parseError("response %d has no href", i)
		}
		if !statusOK(r.Status) || samePath(hrefPath, base.Path) {
			continue
		}

		p := r.props()
		isBook := p.ResourceType != nil && p.ResourceType.AddressBook != nil
		if !isBook && !strings.Contains(strings.ToLower(p.ContentType), "unix-directory") {
			continue
		}

		ref, err := url.Parse(strings.TrimSpace(r.Href))
		if err != nil {
			return nil, fmt.Errorf("%w: bad href %q: %w", ErrParse, r.Href, err)
		}
		name := strings.TrimSpace(p.DisplayName)
		if name == "" {
			name = path.Base(strings.TrimSuffix(hrefPath, "/"))
		}
		books = append(books, models.AddressBook{
			Href:         base.ResolveReference(ref).String(),
			DisplayName:  name,
			LastModified: strings.TrimSpace(p.LastModified),
		})
	}
	return books, nil
}

func isCollection(hrefPath, basePath string, p prop) bool {
	if samePath(hrefPath, basePath) {
		return true
	}
	if p.ResourceType != nil && (p.ResourceType.Collection != nil || p.ResourceType.AddressBook != nil) {
		return true
	}
	return strings.Contains(strings.ToLower(p.ContentType), "unix-directory")
}

func isContact(hrefPath string, p prop) bool {
	if strings.Contains(strings.ToLower(p.ContentType), "vcard") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(hrefPath), vcardExt)
}

// hrefToPath возвращает раскодированный путь href (абсолютного или относительного)
func hrefToPath(href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("%w: bad href %q: %w", ErrParse, href, err)
	}
	return u.Path, nil
}

// resourceIDFromPath: /dav/book/ABC.vcf -> ABC
func resourceIDFromPath(p string) string {
	base := path.Base(strings.TrimSuffix(p, "/"))
	if base == "." || base == "/" {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(base), vcardExt) {
		base = base[:len(base)-len(vcardExt)]
	}
	return base
}

// cleanETag убирает кавычки и признак слабого etag
func cleanETag(etag string) string {
	etag = strings.TrimSpace(etag)
	etag = strings.TrimPrefix(etag, "W/")
	return strings.Trim(etag, `"`)
}

func samePath(a, b string) bool {
	return strings.TrimSuffix(a, "/") == strings.TrimSuffix(b, "/")
}

// statusOK разбирает строку вида "HTTP/1.1 200 OK". Пустой статус считается успешным.
func statusOK(status string) bool {
	fields := strings.Fields(status)
	if len(fields) < 2 {
		return true
	}
	return strings.HasPrefix(fields[1], "2")
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// Тела запросов

type empty struct{}

type propRequest struct {
	ResourceType *empty `xml:"D:resourcetype,omitempty"`
	DisplayName  *empty `xml:"D:displayname,omitempty"`
	ETag         *empty `xml:"D:getetag,omitempty"`
	LastModified *empty `xml:"D:getlastmodified,omitempty"`
	ContentType  *empty `xml:"D:getcontenttype,omitempty"`
	AddressData  *empty `xml:"C:address-data,omitempty"`
}

type propfindRequest struct {
	XMLName xml.Name    `xml:"D:propfind"`
	DAV     string      `xml:"xmlns:D,attr"`
	CardDAV string      `xml:"xmlns:C,attr"`
	Prop    propRequest `xml:"D:prop"`
}

type addressbookQueryRequest struct {
	XMLName xml.Name    `xml:"C:addressbook-query"`
	DAV     string      `xml:"xmlns:D,attr"`
	CardDAV string      `xml:"xmlns:C,attr"`
	Prop    propRequest `xml:"D:prop"`
}

type addressbookMultigetRequest struct {
	XMLName xml.Name    `xml:"C:addressbook-multiget"`
	DAV     string      `xml:"xmlns:D,attr"`
	CardDAV string      `xml:"xmlns:C,attr"`
	Prop    propRequest `xml:"D:prop"`
	Hrefs   []string    `xml:"D:href"`
}

func listProps(includeBodies bool) propRequest {
	p := propRequest{
		ETag:         &empty{},
		LastModified: &empty{},
		ContentType:  &empty{},
	}
	if includeBodies {
		p.AddressData = &empty{}
	}
	return p
}

func propfindListBody() ([]byte, error) {
	p := listProps(false)
	p.ResourceType = &empty{}
	return marshalRequest(propfindRequest{DAV: nsDAV, CardDAV: nsCardDAV, Prop: p})
}

func propfindDiscoverBody() ([]byte, error) {
	return marshalRequest(propfindRequest{
		DAV:     nsDAV,
		CardDAV: nsCardDAV,
		Prop: propRequest{
			ResourceType: &empty{},
			DisplayName:  &empty{},
			LastModified: &empty{},
			ContentType:  &empty{},
		},
	})
}

func addressbookQueryBody(includeBodies bool) ([]byte, error) {
	return marshalRequest(addressbookQueryRequest{DAV: nsDAV, CardDAV: nsCardDAV, Prop: listProps(includeBodies)})
}

func addressbookMultigetBody(hrefs []string) ([]byte, error) {
	return marshalRequest(addressbookMultigetRequest{
		DAV:     nsDAV,
		CardDAV: nsCardDAV,
		Prop:    listProps(true),
		Hrefs:   hrefs,
	})
}

func marshalRequest(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return buf.Bytes(), nil
}
