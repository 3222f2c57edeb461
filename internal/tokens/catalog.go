package tokens

// catalog is the full token catalog. Every entry carries a description and
// both light/dark defaults; registry_test.go enforces this.
var catalog = []ColorToken{
	// Base palette
	{"colors.background", CategoryBase, "Application background", "#ffffff", "#1e1e1e"},
	{"colors.foreground", CategoryBase, "Default text color", "#333333", "#d4d4d4"},
	{"colors.primary", CategoryBase, "Primary accent color", "#007acc", "#0e639c"},
	{"colors.secondary", CategoryBase, "Secondary accent color", "#5f6a79", "#3a3d41"},
	{"colors.border", CategoryBase, "Default border between UI areas", "#e5e5e5", "#444444"},
	{"colors.focusBorder", CategoryBase, "Border of focused elements", "#0090f1", "#007fd4"},
	{"colors.contrastBorder", CategoryBase, "Extra border for high-contrast modes", "#6fc3df", "#6fc3df"},
	{"colors.disabledForeground", CategoryBase, "Text color of disabled elements", "#a0a0a0", "#6b6b6b"},
	{"colors.descriptionForeground", CategoryBase, "Secondary descriptive text", "#717171", "#9d9d9d"},
	{"colors.errorForeground", CategoryBase, "Error message text", "#a1260d", "#f48771"},
	{"colors.warningForeground", CategoryBase, "Warning message text", "#bf8803", "#cca700"},
	{"colors.infoForeground", CategoryBase, "Informational message text", "#1a85ff", "#3794ff"},
	{"colors.selectionBackground", CategoryBase, "Background of selected text", "#add6ff", "#264f78"},
	{"colors.linkForeground", CategoryBase, "Hyperlink text", "#006ab1", "#3794ff"},
	{"colors.shadow", CategoryBase, "Shadow under overlaying widgets", "#dddddd", "#000000"},

	// Buttons
	{"button.background", CategoryButton, "Button background", "#007acc", "#0e639c"},
	{"button.foreground", CategoryButton, "Button label", "#ffffff", "#ffffff"},
	{"button.hoverBackground", CategoryButton, "Button background on hover", "#0062a3", "#1177bb"},
	{"button.border", CategoryButton, "Button border", "#cccccc", "#555555"},
	{"button.secondaryBackground", CategoryButton, "Secondary button background", "#5f6a79", "#3a3d41"},
	{"button.secondaryForeground", CategoryButton, "Secondary button label", "#ffffff", "#ffffff"},
	{"button.secondaryHoverBackground", CategoryButton, "Secondary button background on hover", "#4c5561", "#45494e"},
	{"button.disabledBackground", CategoryButton, "Disabled button background", "#e1e1e1", "#2d2d2d"},
	{"button.disabledForeground", CategoryButton, "Disabled button label", "#a0a0a0", "#6b6b6b"},

	// Inputs
	{"input.background", CategoryInput, "Input field background", "#ffffff", "#3c3c3c"},
	{"input.foreground", CategoryInput, "Input field text", "#616161", "#cccccc"},
	{"input.border", CategoryInput, "Input field border", "#cecece", "#3c3c3c"},
	{"input.focusBorder", CategoryInput, "Input field border when focused", "#0090f1", "#007fd4"},
	{"input.placeholderForeground", CategoryInput, "Placeholder text", "#767676", "#8b8b8b"},
	{"input.selectionBackground", CategoryInput, "Selected text inside an input", "#add6ff", "#264f78"},
	{"input.disabledBackground", CategoryInput, "Disabled input background", "#f4f4f4", "#2d2d2d"},
	{"input.errorBorder", CategoryInput, "Input border in error state", "#be1100", "#be1100"},
	{"input.errorForeground", CategoryInput, "Input validation error text", "#a1260d", "#f48771"},
	{"input.warningBorder", CategoryInput, "Input border in warning state", "#bf8803", "#b89500"},
	{"input.warningForeground", CategoryInput, "Input validation warning text", "#855f00", "#cca700"},
	{"input.infoBorder", CategoryInput, "Input border in info state", "#007acc", "#007fd4"},

	// Lists and trees
	{"list.activeSelectionBackground", CategoryList, "Selected row background in a focused list", "#0060c0", "#094771"},
	{"list.activeSelectionForeground", CategoryList, "Selected row text in a focused list", "#ffffff", "#ffffff"},
	{"list.inactiveSelectionBackground", CategoryList, "Selected row background in an unfocused list", "#e4e6f1", "#37373d"},
	{"list.inactiveSelectionForeground", CategoryList, "Selected row text in an unfocused list", "#333333", "#d4d4d4"},
	{"list.hoverBackground", CategoryList, "Row background on hover", "#f0f0f0", "#2a2d2e"},
	{"list.hoverForeground", CategoryList, "Row text on hover", "#333333", "#d4d4d4"},
	{"list.focusBackground", CategoryList, "Focused row background", "#d6ebff", "#062f4a"},
	{"list.focusForeground", CategoryList, "Focused row text", "#333333", "#d4d4d4"},
	{"list.highlightForeground", CategoryList, "Matched characters when filtering", "#0066bf", "#18a3ff"},
	{"list.dropBackground", CategoryList, "Drag-and-drop target background", "#d6ebff", "#383b3d"},
	{"list.errorForeground", CategoryList, "Row text for entries with errors", "#b01011", "#f88070"},
	{"list.warningForeground", CategoryList, "Row text for entries with warnings", "#855f00", "#cca700"},
	{"list.invalidItemForeground", CategoryList, "Row text for invalid entries", "#b89500", "#b89500"},
	{"list.deemphasizedForeground", CategoryList, "De-emphasized row text", "#8e8e90", "#8c8c8c"},
	{"list.filterMatchBackground", CategoryList, "Background of filter matches", "#eaf2b0", "#ea5c0055"},
	{"list.filterMatchBorder", CategoryList, "Border of filter matches", "#b5cf7d", "#ea5c00"},

	// Editor
	{"editor.background", CategoryEditor, "Editor surface background", "#ffffff", "#1e1e1e"},
	{"editor.foreground", CategoryEditor, "Editor default text", "#333333", "#d4d4d4"},
	{"editor.lineHighlightBackground", CategoryEditor, "Background of the cursor line", "#f5f5f5", "#282828"},
	{"editor.lineHighlightBorder", CategoryEditor, "Border of the cursor line", "#eeeeee", "#282828"},
	{"editor.selectionBackground", CategoryEditor, "Selected text background", "#add6ff", "#264f78"},
	{"editor.selectionForeground", CategoryEditor, "Selected text color", "#000000", "#ffffff"},
	{"editor.inactiveSelectionBackground", CategoryEditor, "Selection background when unfocused", "#e5ebf1", "#3a3d41"},
	{"editor.cursorForeground", CategoryEditor, "Text cursor color", "#000000", "#aeafad"},
	{"editor.whitespaceForeground", CategoryEditor, "Rendered whitespace marks", "#d3d3d3", "#3b3b3b"},
	{"editor.indentGuideBackground", CategoryEditor, "Indentation guides", "#d3d3d3", "#404040"},
	{"editor.indentGuideActiveBackground", CategoryEditor, "Active indentation guide", "#939393", "#707070"},
	{"editor.lineNumberForeground", CategoryEditor, "Line numbers", "#237893", "#858585"},
	{"editor.lineNumberActiveForeground", CategoryEditor, "Line number of the cursor line", "#0b216f", "#c6c6c6"},
	{"editor.findMatchBackground", CategoryEditor, "Current search match", "#a8ac94", "#515c6a"},
	{"editor.findMatchHighlightBackground", CategoryEditor, "Other search matches", "#ea5c0055", "#ea5c0055"},
	{"editor.wordHighlightBackground", CategoryEditor, "Read occurrences of the symbol under cursor", "#57575740", "#575757b8"},
	{"editor.wordHighlightStrongBackground", CategoryEditor, "Write occurrences of the symbol under cursor", "#0e639c40", "#004972b8"},
	{"editor.hoverHighlightBackground", CategoryEditor, "Range highlighted on hover", "#add6ff26", "#264f7840"},
	{"editor.rangeHighlightBackground", CategoryEditor, "Highlighted ranges such as quick-open targets", "#fdff0033", "#ffffff0b"},
	{"editor.bracketMatchBackground", CategoryEditor, "Matching bracket background", "#0064001a", "#0064001a"},
	{"editor.bracketMatchBorder", CategoryEditor, "Matching bracket border", "#b9b9b9", "#888888"},
	{"editor.rulerForeground", CategoryEditor, "Vertical column rulers", "#d3d3d3", "#5a5a5a"},
	{"editorWidget.background", CategoryEditor, "Widgets floating over the editor", "#f3f3f3", "#252526"},
	{"editorWidget.border", CategoryEditor, "Border of editor widgets", "#c8c8c8", "#454545"},
	{"editorGutter.background", CategoryEditor, "Gutter behind line numbers", "#ffffff", "#1e1e1e"},
	{"editorError.foreground", CategoryEditor, "Squiggle color for errors", "#e51400", "#f48771"},
	{"editorWarning.foreground", CategoryEditor, "Squiggle color for warnings", "#bf8803", "#cca700"},
	{"editorInfo.foreground", CategoryEditor, "Squiggle color for info diagnostics", "#1a85ff", "#3794ff"},
	{"editorLink.activeForeground", CategoryEditor, "Links inside the editor when clicked", "#0000ff", "#4e94ce"},

	// Sidebar
	{"sideBar.background", CategorySidebar, "Sidebar background", "#f3f3f3", "#252526"},
	{"sideBar.foreground", CategorySidebar, "Sidebar text", "#616161", "#cccccc"},
	{"sideBar.border", CategorySidebar, "Border between sidebar and editor", "#e5e5e5", "#2d2d2d"},
	{"sideBar.dropBackground", CategorySidebar, "Drag-and-drop target inside the sidebar", "#d6ebff", "#383b3d"},
	{"sideBarTitle.foreground", CategorySidebar, "Sidebar title text", "#6f6f6f", "#bbbbbb"},
	{"sideBarSectionHeader.background", CategorySidebar, "Sidebar section header background", "#e7e7e7", "#303031"},
	{"sideBarSectionHeader.foreground", CategorySidebar, "Sidebar section header text", "#616161", "#cccccc"},
	{"sideBarSectionHeader.border", CategorySidebar, "Sidebar section header border", "#d4d4d4", "#2d2d2d"},

	// Panels
	{"panel.background", CategoryPanel, "Bottom panel background", "#ffffff", "#1e1e1e"},
	{"panel.border", CategoryPanel, "Border above the panel", "#e5e5e5", "#3c3c3c"},
	{"panel.dropBorder", CategoryPanel, "Drag-and-drop feedback inside the panel", "#424242", "#e7e7e7"},
	{"panelTitle.activeForeground", CategoryPanel, "Active panel tab title", "#424242", "#e7e7e7"},
	{"panelTitle.activeBorder", CategoryPanel, "Underline of the active panel tab", "#424242", "#e7e7e7"},
	{"panelTitle.inactiveForeground", CategoryPanel, "Inactive panel tab title", "#6f6f6f", "#9d9d9d"},
	{"panelInput.border", CategoryPanel, "Inputs hosted inside a panel", "#dddddd", "#3c3c3c"},
	{"panelSection.border", CategoryPanel, "Border between stacked panel sections", "#e5e5e5", "#3c3c3c"},
	{"panelSectionHeader.background", CategoryPanel, "Panel section header background", "#e7e7e7", "#303031"},

	// Tabs
	{"tab.activeBackground", CategoryTab, "Active tab background", "#ffffff", "#1e1e1e"},
	{"tab.activeForeground", CategoryTab, "Active tab label", "#333333", "#ffffff"},
	{"tab.inactiveBackground", CategoryTab, "Inactive tab background", "#ececec", "#2d2d2d"},
	{"tab.inactiveForeground", CategoryTab, "Inactive tab label", "#6f6f6f", "#969696"},
	{"tab.border", CategoryTab, "Border separating tabs", "#f3f3f3", "#252526"},
	{"tab.activeBorder", CategoryTab, "Bottom border of the active tab", "#ffffff", "#1e1e1e"},
	{"tab.activeBorderTop", CategoryTab, "Top border of the active tab", "#0090f1", "#007fd4"},
	{"tab.hoverBackground", CategoryTab, "Tab background on hover", "#f5f5f5", "#2a2d2e"},
	{"tab.hoverBorder", CategoryTab, "Tab border on hover", "#e5e5e5", "#3c3c3c"},
	{"tab.unfocusedActiveForeground", CategoryTab, "Active tab label in an unfocused group", "#6f6f6f", "#9d9d9d"},
	{"tab.unfocusedInactiveForeground", CategoryTab, "Inactive tab label in an unfocused group", "#a0a0a0", "#6b6b6b"},
	{"tab.activeModifiedBorder", CategoryTab, "Modified marker on the active tab", "#33aaee", "#3399cc"},
	{"tab.inactiveModifiedBorder", CategoryTab, "Modified marker on inactive tabs", "#33aaee80", "#3399cc80"},
	{"tab.lastPinnedBorder", CategoryTab, "Border after the last pinned tab", "#cccccc", "#585858"},
	{"tab.dragAndDropBorder", CategoryTab, "Insertion indicator while dragging a tab", "#333333", "#ffffff"},

	// Activity bar
	{"activityBar.background", CategoryActivityBar, "Activity bar background", "#2c2c2c", "#333333"},
	{"activityBar.foreground", CategoryActivityBar, "Active activity bar icon", "#ffffff", "#ffffff"},
	{"activityBar.inactiveForeground", CategoryActivityBar, "Inactive activity bar icons", "#ffffff66", "#ffffff66"},
	{"activityBar.border", CategoryActivityBar, "Border of the activity bar", "#2c2c2c", "#333333"},
	{"activityBar.activeBorder", CategoryActivityBar, "Indicator of the active activity item", "#ffffff", "#ffffff"},
	{"activityBar.activeBackground", CategoryActivityBar, "Background of the active activity item", "#3d3d3d", "#3d3d3d"},
	{"activityBar.dropBorder", CategoryActivityBar, "Drag-and-drop feedback in the activity bar", "#ffffff", "#ffffff"},
	{"activityBarBadge.background", CategoryActivityBar, "Notification badge background", "#007acc", "#007acc"},
	{"activityBarBadge.foreground", CategoryActivityBar, "Notification badge text", "#ffffff", "#ffffff"},

	// Status bar
	{"statusBar.background", CategoryStatusBar, "Status bar background", "#007acc", "#007acc"},
	{"statusBar.foreground", CategoryStatusBar, "Status bar text", "#ffffff", "#ffffff"},
	{"statusBar.border", CategoryStatusBar, "Border above the status bar", "#007acc", "#007acc"},
	{"statusBar.focusBorder", CategoryStatusBar, "Status bar border when focused", "#ffffff", "#ffffff"},
	{"statusBar.debuggingBackground", CategoryStatusBar, "Status bar background while debugging", "#cc6633", "#cc6633"},
	{"statusBar.debuggingForeground", CategoryStatusBar, "Status bar text while debugging", "#ffffff", "#ffffff"},
	{"statusBar.noFolderBackground", CategoryStatusBar, "Status bar background with no workspace", "#68217a", "#68217a"},
	{"statusBar.noFolderForeground", CategoryStatusBar, "Status bar text with no workspace", "#ffffff", "#ffffff"},
	{"statusBarItem.activeBackground", CategoryStatusBar, "Status item background when clicked", "#ffffff2e", "#ffffff2e"},
	{"statusBarItem.hoverBackground", CategoryStatusBar, "Status item background on hover", "#ffffff1f", "#ffffff1f"},
	{"statusBarItem.prominentBackground", CategoryStatusBar, "Prominent status item background", "#00000080", "#00000080"},
	{"statusBarItem.prominentForeground", CategoryStatusBar, "Prominent status item text", "#ffffff", "#ffffff"},
	{"statusBarItem.errorBackground", CategoryStatusBar, "Status item background for errors", "#c72e0f", "#c72e0f"},
	{"statusBarItem.remoteBackground", CategoryStatusBar, "Remote indicator background", "#16825d", "#16825d"},
	{"statusBarItem.remoteForeground", CategoryStatusBar, "Remote indicator text", "#ffffff", "#ffffff"},

	// Title bar
	{"titleBar.activeBackground", CategoryTitleBar, "Title bar background when focused", "#dddddd", "#3c3c3c"},
	{"titleBar.activeForeground", CategoryTitleBar, "Title bar text when focused", "#333333", "#cccccc"},
	{"titleBar.inactiveBackground", CategoryTitleBar, "Title bar background when unfocused", "#dddddd99", "#3c3c3c99"},
	{"titleBar.inactiveForeground", CategoryTitleBar, "Title bar text when unfocused", "#33333399", "#cccccc99"},
	{"titleBar.border", CategoryTitleBar, "Border under the title bar", "#dddddd", "#3c3c3c"},
	{"titleBar.dropBorder", CategoryTitleBar, "Drag-and-drop feedback in the title bar", "#0090f1", "#007fd4"},

	// Menus
	{"menu.background", CategoryMenu, "Menu background", "#ffffff", "#252526"},
	{"menu.foreground", CategoryMenu, "Menu item text", "#616161", "#cccccc"},
	{"menu.border", CategoryMenu, "Menu border", "#d4d4d4", "#454545"},
	{"menu.selectionBackground", CategoryMenu, "Selected menu item background", "#0060c0", "#094771"},
	{"menu.selectionForeground", CategoryMenu, "Selected menu item text", "#ffffff", "#ffffff"},
	{"menu.selectionBorder", CategoryMenu, "Selected menu item border", "#0060c0", "#094771"},
	{"menu.separatorBackground", CategoryMenu, "Menu separator line", "#d4d4d4", "#bbbbbb"},
	{"menubar.selectionBackground", CategoryMenu, "Selected menubar item background", "#0000001a", "#ffffff1a"},
	{"menubar.selectionForeground", CategoryMenu, "Selected menubar item text", "#333333", "#cccccc"},
	{"menubar.selectionBorder", CategoryMenu, "Selected menubar item border", "#0000001a", "#ffffff1a"},

	// Scrollbars
	{"scrollbar.shadow", CategoryScrollbar, "Shadow indicating scrolled content", "#dddddd", "#000000"},
	{"scrollbarSlider.background", CategoryScrollbar, "Scrollbar slider", "#64646466", "#79797966"},
	{"scrollbarSlider.hoverBackground", CategoryScrollbar, "Scrollbar slider on hover", "#646464b3", "#646464b3"},
	{"scrollbarSlider.activeBackground", CategoryScrollbar, "Scrollbar slider while dragging", "#00000099", "#bfbfbf66"},
	{"minimapSlider.background", CategoryScrollbar, "Minimap slider", "#64646433", "#79797933"},
	{"minimapSlider.hoverBackground", CategoryScrollbar, "Minimap slider on hover", "#64646459", "#64646459"},

	// Miscellaneous
	{"badge.background", CategoryMisc, "Badge background", "#c4c4c4", "#4d4d4d"},
	{"badge.foreground", CategoryMisc, "Badge text", "#333333", "#ffffff"},
	{"progressBar.background", CategoryMisc, "Progress bar fill", "#0e70c0", "#0e70c0"},
	{"widget.shadow", CategoryMisc, "Shadow of overlaying widgets", "#dddddd", "#000000"},
	{"notification.background", CategoryMisc, "Notification toast background", "#f3f3f3", "#252526"},
	{"notification.foreground", CategoryMisc, "Notification toast text", "#616161", "#cccccc"},
	{"notification.border", CategoryMisc, "Notification toast border", "#d4d4d4", "#454545"},
	{"pickerGroup.foreground", CategoryMisc, "Quick picker group labels", "#0066bf", "#3794ff"},
	{"pickerGroup.border", CategoryMisc, "Quick picker group separator", "#cccedb", "#3f3f46"},
	{"tooltip.background", CategoryMisc, "Tooltip background", "#f3f3f3", "#252526"},
	{"tooltip.foreground", CategoryMisc, "Tooltip text", "#616161", "#cccccc"},
	{"tooltip.border", CategoryMisc, "Tooltip border", "#d4d4d4", "#454545"},
	{"breadcrumb.background", CategoryMisc, "Breadcrumb bar background", "#ffffff", "#1e1e1e"},
	{"breadcrumb.foreground", CategoryMisc, "Breadcrumb item text", "#616161cc", "#cccccccc"},
	{"icon.foreground", CategoryMisc, "Default icon color", "#424242", "#c5c5c5"},
	{"splitter.background", CategoryMisc, "Draggable splitter between panes", "#e5e5e5", "#444444"},
	{"keybindingLabel.background", CategoryMisc, "Keybinding hint background", "#dddddd66", "#8080802b"},
	{"keybindingLabel.foreground", CategoryMisc, "Keybinding hint text", "#555555", "#cccccc"},
	{"banner.background", CategoryMisc, "Banner background", "#004386", "#04395e"},
	{"banner.foreground", CategoryMisc, "Banner text", "#ffffff", "#ffffff"},
	{"banner.iconForeground", CategoryMisc, "Banner icon color", "#ffffff", "#3794ff"},
}
