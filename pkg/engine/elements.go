package engine

import "fmt"

// IndexAttribute is the DOM attribute stamped onto each matched element so
// subsequent commands can target it by index.
const IndexAttribute = "data-marionet-index"

// interactiveElementsScript runs inside the page. It matches the actionable
// elements a client is likely to drive, assigns each its document-order
// index as an attribute, and extracts the fields of ElementInfo. Matching
// order is querySelectorAll order, so indices are stable for an unchanged
// DOM.
const interactiveElementsScript = `() => {
	const selector = [
		'a',
		'button',
		'[role="button"]',
		'input[type="submit"]',
		'input[type="button"]',
		'input[type="checkbox"]',
		'input[type="radio"]',
		'[onclick]',
		'[tabindex]',
		'link',
		'summary',
		'input',
		'textarea',
	].join(', ');
	const elements = Array.from(document.querySelectorAll(selector));
	return elements.map((el, i) => {
		el.setAttribute('data-marionet-index', String(i));
		const style = window.getComputedStyle(el);
		const visible =
			!!(el.offsetWidth || el.offsetHeight || el.getClientRects().length) &&
			style.visibility !== 'hidden' &&
			style.display !== 'none';
		return {
			visible: visible,
			className: typeof el.className === 'string' ? el.className : '',
			ariaLabel: el.getAttribute('aria-label') || '',
			ariaDescription: el.getAttribute('aria-description') || '',
			ariaRoleDescription: el.getAttribute('aria-roledescription') || '',
			href: el.getAttribute('href') || '',
			text: el.innerText || '',
			id: el.id || '',
			index: String(i),
			tagName: el.tagName.toLowerCase(),
			type: el.getAttribute('type') || '',
			value: el.value !== undefined && el.value !== null ? String(el.value) : '',
		};
	});
}`

// elementsFromEvaluate converts the Evaluate result, a JS array of plain
// objects, into ElementInfo values.
func elementsFromEvaluate(result interface{}) ([]ElementInfo, error) {
	if result == nil {
		return nil, nil
	}

	items, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected element query result type %T", result)
	}

	elements := make([]ElementInfo, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected element entry type %T at index %d", item, i)
		}
		elements = append(elements, ElementInfo{
			Visible:             boolField(fields, "visible"),
			ClassName:           stringField(fields, "className"),
			AriaLabel:           stringField(fields, "ariaLabel"),
			AriaDescription:     stringField(fields, "ariaDescription"),
			AriaRoleDescription: stringField(fields, "ariaRoleDescription"),
			Href:                stringField(fields, "href"),
			Text:                stringField(fields, "text"),
			ID:                  stringField(fields, "id"),
			Index:               stringField(fields, "index"),
			TagName:             stringField(fields, "tagName"),
			Type:                stringField(fields, "type"),
			Value:               stringField(fields, "value"),
		})
	}
	return elements, nil
}

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func boolField(fields map[string]interface{}, key string) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return false
}
