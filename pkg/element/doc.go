// Package element models HTML form fields as values with chainable attribute
// setters. Every variant embeds Element, which owns an ordered attribute bag,
// and renders itself to markup with Render.
//
// Chainable methods return the concrete variant, so calls compose naturally:
//
//	email := element.NewEmail("email").Label("E-mail").Required().AddClass("wide")
//	fmt.Println(email) // <input type="email" name="email" required class="wide">
package element
